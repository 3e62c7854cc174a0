package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1) // each :memory: connection is its own database
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(`CREATE TABLE visits (id INTEGER PRIMARY KEY, path TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return db
}

func countVisits(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx_Commit(t *testing.T) {
	db := setupTestDB(t)

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		for _, p := range []string{"/", "/random", "/covers"} {
			if _, err := tx.Exec(`INSERT INTO visits (path) VALUES (?)`, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}
	if got := countVisits(t, db); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := setupTestDB(t)
	abort := errors.New("abort")

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO visits (path) VALUES (?)`, "/"); err != nil {
			return err
		}
		return abort
	})
	if !errors.Is(err, abort) {
		t.Fatalf("WithTx error = %v, want %v", err, abort)
	}
	if got := countVisits(t, db); got != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", got)
	}
}

func TestWithTx_StatementError(t *testing.T) {
	db := setupTestDB(t)

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO visits (path) VALUES (?)`, "/"); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO missing_table (path) VALUES (?)`, "/")
		return err
	})
	if err == nil {
		t.Fatal("WithTx should return the statement error")
	}
	if got := countVisits(t, db); got != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", got)
	}
}

func TestWithTx_Canceled(t *testing.T) {
	db := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, db, func(*sql.Tx) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("WithTx error = %v, want context.Canceled", err)
	}
	if called {
		t.Error("fn ran on a canceled context")
	}
}

func TestOr(t *testing.T) {
	ints := []struct {
		in   sql.Null[int64]
		want int64
	}{
		{sql.Null[int64]{V: 42, Valid: true}, 42},
		{sql.Null[int64]{V: -7, Valid: true}, -7},
		{sql.Null[int64]{V: 42}, 0},
	}
	for _, tt := range ints {
		if got := Or(tt.in); got != tt.want {
			t.Errorf("Or(%+v) = %d, want %d", tt.in, got, tt.want)
		}
	}

	strs := []struct {
		in   sql.Null[string]
		want string
	}{
		{sql.Null[string]{V: "mix", Valid: true}, "mix"},
		{sql.Null[string]{Valid: true}, ""},
		{sql.Null[string]{V: "mix"}, ""},
	}
	for _, tt := range strs {
		if got := Or(tt.in); got != tt.want {
			t.Errorf("Or(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
