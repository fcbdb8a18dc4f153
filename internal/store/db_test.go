package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "grantmatch-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return db, cleanup
}

func TestOpen(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	// Verify tables exist
	for _, table := range []string{"people", "projects", "publications", "grant_history", "opportunities"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		if err != nil {
			t.Fatalf("failed to query tables: %v", err)
		}
		if count != 1 {
			t.Errorf("expected %s table to exist", table)
		}
	}
}

func TestOpen_Reopen(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "grantmatch-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	if err := db.CreatePerson(context.Background(), &Person{FullName: "Dana Webb"}); err != nil {
		t.Fatalf("failed to create person: %v", err)
	}
	db.Close()

	// Migrations must be idempotent across opens.
	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	defer db.Close()

	p, err := db.FindPerson(context.Background(), "Dana Webb")
	if err != nil {
		t.Fatalf("failed to find person: %v", err)
	}
	if p == nil {
		t.Fatal("person not found after reopen")
	}
}

func TestTransaction(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO people (id, full_name) VALUES ('p1', 'Dana Webb')`)
		return err
	})
	if err != nil {
		t.Fatalf("Transaction() error = %v", err)
	}

	// A failing function rolls everything back.
	wantErr := errors.New("boom")
	err = db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO people (id, full_name) VALUES ('p2', 'Lee Park')`); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Transaction() error = %v, want %v", err, wantErr)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM people`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("people count = %d after rollback, want 1", count)
	}
}

func TestHealth(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}
