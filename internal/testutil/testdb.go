package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	"workhours/internal/repository"
)

var dbSeq atomic.Int64

// NewTestDB creates an in-memory SQLite database with all migrations
// applied. Each call gets its own uniquely named shared-cache database so
// every pooled connection sees the same schema and tests stay isolated
// from one another. The database is closed when the test completes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := repository.NewDB(dsn)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}
