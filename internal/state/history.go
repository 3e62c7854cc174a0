package state

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/moo/internal/db"
)

// DefaultMaxHistory is the number of distinct paths kept.
const DefaultMaxHistory = 1000

// HistoryEntry is one visited page.
type HistoryEntry struct {
	Path      string
	Title     string
	Visits    int
	VisitedAt time.Time
}

// SetMaxHistory changes how many distinct paths are kept. Values below 1
// restore the default.
func (m *Manager) SetMaxHistory(n int) {
	if n < 1 {
		n = DefaultMaxHistory
	}
	m.maxHistory = n
}

// AddHistory records a visit. Revisiting a path moves it to the end; the
// oldest entries beyond the limit are dropped.
func (m *Manager) AddHistory(path, title string) error {
	now := m.now().Unix()
	return dbutil.WithTx(context.Background(), m.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO history (path, title, seq, visits, visited_at)
			VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM history), 1, ?)
			ON CONFLICT(path) DO UPDATE SET
				title = excluded.title,
				seq = excluded.seq,
				visits = history.visits + 1,
				visited_at = excluded.visited_at
		`, path, title, now)
		if err != nil {
			return fmt.Errorf("record visit: %w", err)
		}

		_, err = tx.Exec(`
			DELETE FROM history WHERE seq NOT IN (
				SELECT seq FROM history ORDER BY seq DESC LIMIT ?
			)
		`, m.maxHistory)
		if err != nil {
			return fmt.Errorf("trim history: %w", err)
		}
		return nil
	})
}

// History returns up to limit entries, most recent last.
func (m *Manager) History(limit int) ([]HistoryEntry, error) {
	rows, err := m.db.Query(`
		SELECT path, title, visits, visited_at FROM (
			SELECT path, title, visits, visited_at, seq FROM history
			ORDER BY seq DESC LIMIT ?
		) ORDER BY seq ASC
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var (
			e       HistoryEntry
			title   sql.Null[string]
			visited sql.Null[int64]
		)
		if err := rows.Scan(&e.Path, &title, &e.Visits, &visited); err != nil {
			return nil, err
		}
		e.Title = dbutil.Or(title)
		e.VisitedAt = time.Unix(dbutil.Or(visited), 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearHistory removes all entries.
func (m *Manager) ClearHistory() error {
	_, err := m.db.Exec(`DELETE FROM history`)
	return err
}
