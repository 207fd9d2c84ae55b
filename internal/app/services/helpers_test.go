package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/campushub/eventhub/internal/app/migrations"
	"github.com/campushub/eventhub/internal/app/repositories"
)

func openTestRepos(t *testing.T) *repositories.Repositories {
	t.Helper()

	database, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	database.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = database.Close()
	})

	if err := migrations.NewMigrator(database).Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return repositories.NewRepositories(database)
}
