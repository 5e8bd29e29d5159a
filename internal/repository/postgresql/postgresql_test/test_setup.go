package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/grofast/portal-backend-go/internal/pkg/database"
	"github.com/grofast/portal-backend-go/internal/repository/postgresql"
)

// TestDatabaseSetup holds the connection used by repository tests
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL, skipping the test when unset
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := postgresql.EnsureKVSchema(ctx, db); err != nil {
		db.Close()
		t.Fatalf("failed to prepare schema: %v", err)
	}
	t.Cleanup(db.Close)

	return &TestDatabaseSetup{DB: db}
}

// TruncateAllTables removes every row written by a test
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tables := []string{"kv_blobs"}
	for _, table := range tables {
		if _, err := s.DB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s", table)); err != nil {
			return err
		}
	}
	return nil
}
