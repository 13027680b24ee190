package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jask/quizboard/internal/board"
	"github.com/jask/quizboard/internal/tui"
	"github.com/jask/quizboard/internal/web"
)

// writeList prints a loaded list in the requested format.
func writeList(w io.Writer, format string, state board.ListState) error {
	switch format {
	case "html":
		return web.WriteList(w, state)
	case "json":
		return writeListJSON(w, state)
	case "text", "":
		return writeListText(w, state)
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeListText(w io.Writer, state board.ListState) error {
	var err error
	switch state.Phase {
	case board.ListEmpty:
		_, err = fmt.Fprintln(w, board.EmptyText)
	case board.ListFailed:
		_, err = fmt.Fprintf(w, "%s\n%s\n%s\n", board.LoadFailedText, tui.Sanitize(board.BackendHint(state.APIURL)), tui.Sanitize(board.ErrorLine(state.Err)))
	default:
		for _, c := range state.Cards {
			if _, err = fmt.Fprintf(w, "#%d %s\n    %s\n    Created: %s\n", c.ID, tui.Sanitize(c.Title), tui.Sanitize(c.Description), c.Created); err != nil {
				return err
			}
		}
	}
	return err
}

func writeListJSON(w io.Writer, state board.ListState) error {
	out := struct {
		Quizzes []board.Card `json:"quizzes"`
		Error   string       `json:"error,omitempty"`
	}{Quizzes: state.Cards}
	if out.Quizzes == nil {
		out.Quizzes = []board.Card{}
	}
	if state.Phase == board.ListFailed && state.Err != nil {
		out.Error = state.Err.Error()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
