package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/five82/notes/internal/notestore"
	"github.com/five82/notes/internal/state"
)

// PrintList runs the startup flow headlessly and writes the sidebar as a
// table: one row per note, the selected one marked with an asterisk.
func PrintList(ctx context.Context, store notestore.Store, out io.Writer, logger zerolog.Logger) error {
	machine := state.NewMachine(store, logger)
	st := machine.Dispatch(ctx, state.Startup{})

	// A failed startup list leaves Notes unset.
	if st.Notes == nil {
		if st.Err == "" {
			return errors.New("list notes: no response")
		}
		return errors.New(st.Err)
	}

	if len(st.Notes) == 0 {
		_, err := fmt.Fprintln(out, "No notes yet")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tTITLE\tUPDATED")
	for _, n := range st.Notes {
		mark := ""
		if n.ID == st.SelectedID {
			mark = "*"
		}
		updated := ""
		if ts := n.ParsedTimestamp(); !ts.IsZero() {
			updated = ts.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, n.ID, listTitle(n.Title), updated)
	}
	return tw.Flush()
}

func listTitle(title string) string {
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return "Untitled"
	}
	return title
}
