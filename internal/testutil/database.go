// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/university/internal/config"
	"github.com/yigit/university/internal/db"
)

// SQLiteConfig returns a configuration pointing at a private in-memory SQLite database.
func SQLiteConfig(name string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.Mode = config.ModeDevelopment
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.ConnectionString = fmt.Sprintf("file:%s?mode=memory&cache=shared", sanitize(name))
	cfg.Database.ConnMaxLifetime = "1h"
	cfg.Logging.Level = "error"
	return cfg
}

// NewTestDatabase opens an in-memory SQLite database with the schema created.
// It is closed when the test ends.
func NewTestDatabase(t testing.TB) *db.Database {
	t.Helper()

	database, err := db.NewDatabase(SQLiteConfig(t.Name()), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.EnsureCreated(context.Background()))
	return database
}

func sanitize(name string) string {
	return strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(name)
}
