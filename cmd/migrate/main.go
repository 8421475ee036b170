// cmd/migrate/main.go
// Copies the tips and the session flag from another store into the configured one,
// e.g. from a local SQLite file used on the day into the long-term PostgreSQL database.
//
// Usage:
//
//	DB_DRIVER=postgres DB_PASS=pgpass \
//	go run ./cmd/migrate -from-driver sqlite -from-dsn "file:speedtip.db"
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"

	"github.com/cheggaaa/pb/v3"
	"github.com/uptrace/bun"

	"github.com/padraicbc/speedtip/config"
	bundb "github.com/padraicbc/speedtip/db"
	"github.com/padraicbc/speedtip/models"
	"github.com/padraicbc/speedtip/store"
)

const batchSize = 500

func main() {
	fromDriver := flag.String("from-driver", config.DriverSQLite, "source driver: postgres, mysql, sqlite or libsql")
	fromDSN := flag.String("from-dsn", "", "source DSN (required)")
	quiet := flag.Bool("quiet", false, "hide the progress bar")
	flag.Parse()

	if *fromDSN == "" {
		log.Fatal("-from-dsn required, e.g.: file:speedtip.db")
	}
	ctx := context.Background()
	cfg := config.LoadStore()

	// --- source ---
	src, err := bundb.Open(*fromDriver, *fromDSN, false)
	if err != nil {
		log.Fatalf("open source: %v", err)
	}
	defer src.Close()
	if err := src.PingContext(ctx); err != nil {
		log.Fatalf("ping source: %v", err)
	}
	log.Printf("connected to source (%s)", *fromDriver)

	// --- destination ---
	dst := bundb.Setup(cfg)
	defer dst.Close()
	log.Printf("connected to destination (%s)", cfg.DBDriver)

	// Create tables (idempotent)
	if err := bundb.CreateTables(ctx, dst); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	n, err := migrateTips(ctx, src, dst, !*quiet)
	if err != nil {
		log.Fatalf("migrate tips: %v", err)
	}
	log.Printf("%-10s  %d rows migrated", "tips", n)

	if err := migrateSession(ctx, src, store.New(dst)); err != nil {
		log.Fatalf("migrate session: %v", err)
	}

	if cfg.DBDriver == config.DriverPostgres {
		resetSequence(ctx, dst)
	}
	log.Println("migration complete")
}

// bulkInsert inserts a batch, skipping rows that already exist (idempotent re-runs).
func bulkInsert(ctx context.Context, dst *bun.DB, rows []models.Tip) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := dst.NewInsert().Model(&rows).Ignore().Exec(ctx)
	return err
}

// migrateTips walks the source by id so batches stay stable while copying.
func migrateTips(ctx context.Context, src, dst *bun.DB, progress bool) (int, error) {
	total, err := src.NewSelect().Model((*models.Tip)(nil)).Count(ctx)
	if err != nil {
		return 0, err
	}
	bar := pb.New(total)
	if progress {
		bar.Start()
		defer bar.Finish()
	}

	var lastID int64
	copied := 0
	for {
		var batch []models.Tip
		err := src.NewSelect().Model(&batch).
			Where("t.id > ?", lastID).
			Order("t.id ASC").
			Limit(batchSize).
			Scan(ctx)
		if err != nil {
			return copied, err
		}
		if len(batch) == 0 {
			return copied, nil
		}
		if err := bulkInsert(ctx, dst, batch); err != nil {
			return copied, err
		}
		lastID = batch[len(batch)-1].ID
		copied += len(batch)
		bar.Add(len(batch))
	}
}

// migrateSession copies the gate flag; a source without a session row leaves
// the destination untouched.
func migrateSession(ctx context.Context, src *bun.DB, dst *store.Store) error {
	open, found, err := store.New(src).TipsOpen(ctx)
	if err != nil {
		return err
	}
	if !found {
		log.Println("session: no row in source, skipped")
		return nil
	}
	if err := dst.SetTipsOpen(ctx, open); err != nil {
		return err
	}
	log.Printf("session: tips_open=%v", open)
	return nil
}

func resetSequence(ctx context.Context, dst *bun.DB) {
	var next sql.NullInt64
	err := dst.NewRaw("SELECT setval('tips_id_seq', COALESCE((SELECT MAX(id) FROM tips), 1))").Scan(ctx, &next)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Printf("reset seq tips_id_seq: %v", err)
		return
	}
	log.Println("sequence reset")
}
