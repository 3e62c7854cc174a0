package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/moo/internal/state"
)

// runHistory prints or clears the visit history kept by the player.
func runHistory(w io.Writer, limit int, clearAll bool) error {
	st, err := state.Open()
	if err != nil {
		return err
	}
	defer st.Close()
	return history(w, st, limit, clearAll)
}

func history(w io.Writer, st *state.Manager, limit int, clearAll bool) error {
	if clearAll {
		if err := st.ClearHistory(); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
		fmt.Fprintln(w, "history cleared")
		return nil
	}
	entries, err := st.History(limit)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "history: empty")
		return nil
	}
	printHistory(w, entries)
	return nil
}

func printHistory(w io.Writer, entries []state.HistoryEntry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%dx\t%s\n", e.Path, e.Title, e.Visits, humanize.Time(e.VisitedAt))
	}
}
