package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var clipboardWriteAll = clipboard.WriteAll

type copiedMsg struct {
	err error
}

// copyCmd writes text to the system clipboard off the update loop.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy failed: %w", err)}
		}
		return copiedMsg{}
	}
}
