// Package tui renders the live sync status indicator: connectivity, the
// replay spinner, and the pending mutation counter, updated as the shared
// sync state changes.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tanzeel8246/madrasa/internal/service"
	"github.com/Tanzeel8246/madrasa/models"
)

// TUI owns the terminal status indicator.
type TUI struct {
	state *service.SyncState
	lang  string
}

// New creates the indicator bound to the shared sync state.
func New(state *service.SyncState, lang string) *TUI {
	return &TUI{state: state, lang: lang}
}

// Watch runs the status indicator until the user quits or ctx is cancelled.
func (t *TUI) Watch(ctx context.Context) error {
	updates := make(chan models.SyncStatus, 16)
	t.state.Subscribe(func(status models.SyncStatus) {
		select {
		case updates <- status:
		default:
			// the indicator only needs the latest snapshot; dropping an
			// intermediate one is harmless
		}
	})

	model := newStatusModel(t.state.Snapshot(), updates, t.lang)
	_, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}
