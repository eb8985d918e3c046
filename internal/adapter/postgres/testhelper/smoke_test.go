package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	// The kv_store table must exist after migrations.
	var count int
	err := pool.QueryRow(
		context.Background(),
		`SELECT count(*) FROM kv_store`,
	).Scan(&count)
	if err != nil {
		t.Fatalf("expected kv_store table, got error: %v", err)
	}
}
