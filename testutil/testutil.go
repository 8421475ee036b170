// Package testutil provides an in-memory store for package tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/uptrace/bun"

	"github.com/padraicbc/speedtip/config"
	"github.com/padraicbc/speedtip/db"
)

// NewDB opens a private in-memory SQLite database with the full schema.
// It is closed when the test ends.
func NewDB(t *testing.T) *bun.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	bdb, err := db.Open(config.DriverSQLite, dsn, false)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = bdb.Close() })

	if err := db.CreateTables(context.Background(), bdb); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return bdb
}
