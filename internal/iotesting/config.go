// Package iotesting provides shared test utilities: small identification
// keys and database settings for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/gnkey/pkg/config"
	"github.com/jackc/pgx/v5"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "gnkey_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// Connection settings can be changed with GNKEY_DATABASE_HOST and
// GNKEY_DATABASE_PORT; the database name is always TestDatabaseName.
func GetTestConfig() *config.Config {
	cfg := config.New()
	var opts []config.Option
	if host := os.Getenv("GNKEY_DATABASE_HOST"); host != "" {
		opts = append(opts, config.OptDatabaseHost(host))
	}
	if user := os.Getenv("GNKEY_DATABASE_USER"); user != "" {
		opts = append(opts, config.OptDatabaseUser(user))
	}
	if pass := os.Getenv("GNKEY_DATABASE_PASSWORD"); pass != "" {
		opts = append(opts, config.OptDatabasePassword(pass))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)
	return cfg
}

// SkipWithoutDatabase skips the test in short mode or when the test
// database cannot be reached.
func SkipWithoutDatabase(t *testing.T, cfg *config.Config) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	db := cfg.Database
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		db.User, db.Password, db.Host, db.Port, db.Database, db.SSLMode)
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		t.Skipf("skipping: test database is not available: %v", err)
	}
	conn.Close(ctx)
}

// SetupTempHome creates a temporary home directory with config, cache
// and log subdirectories.
func SetupTempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	dirs := []string{
		config.ConfigDir(home),
		config.CacheDir(home),
		config.LogDir(home),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	return home
}

// WriteFile writes content to name inside dir and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
