package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/padraicbc/speedtip/config"
	"github.com/padraicbc/speedtip/models"
)

// Setup opens the configured store and verifies the connection.
func Setup(cfg *config.Config) *bun.DB {
	db, err := Open(cfg.DBDriver, cfg.DSN(), cfg.Debug)
	if err != nil {
		zap.L().Fatal("failed to open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		zap.L().Fatal("failed to connect to database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	return db
}

// Open builds a bun.DB for driver without touching the network.
func Open(driver, dsn string, debug bool) (*bun.DB, error) {
	var db *bun.DB
	switch driver {
	case config.DriverPostgres:
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		db = bun.NewDB(sqldb, pgdialect.New())
	case config.DriverMySQL:
		sqldb, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, err
		}
		db = bun.NewDB(sqldb, mysqldialect.New())
	case config.DriverSQLite, config.DriverLibSQL:
		name := "sqlite"
		if driver == config.DriverLibSQL {
			name = "libsql"
		}
		sqldb, err := sql.Open(name, dsn)
		if err != nil {
			return nil, err
		}
		if isMemory(dsn) {
			// Every connection to :memory: is a separate database.
			sqldb.SetMaxOpenConns(1)
		}
		db = bun.NewDB(sqldb, sqlitedialect.New())
	default:
		return nil, fmt.Errorf("unknown driver %q", driver)
	}

	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return db, nil
}

func isMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// CreateTables creates the contest tables if they are missing.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.Session)(nil),
		(*models.Tip)(nil),
	}

	for _, model := range tables {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	// MySQL has no CREATE INDEX IF NOT EXISTS; a duplicate there is harmless.
	_, err := db.NewCreateIndex().
		Model((*models.Tip)(nil)).
		Index("tips_archived_idx").
		Column("archived", "player_name").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		zap.L().Warn("create index", zap.String("index", "tips_archived_idx"), zap.Error(err))
	}

	return nil
}
