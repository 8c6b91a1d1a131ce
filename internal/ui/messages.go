package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/charter-terminal/internal/catalog"
)

// Message types for async operations

// catalogLoadedMsg is sent when a catalog load resolves
type catalogLoadedMsg struct {
	snapshot *catalog.Snapshot
	err      error
}

// loadTimeout bounds a whole load from the UI's side
const loadTimeout = 60 * time.Second

// loadCatalog fetches both sheets in the background
func loadCatalog(loader *catalog.Loader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		snapshot, err := loader.Load(ctx)
		return catalogLoadedMsg{snapshot: snapshot, err: err}
	}
}

// retryCatalog resets the loader and fetches again
func retryCatalog(loader *catalog.Loader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		snapshot, err := loader.Retry(ctx)
		return catalogLoadedMsg{snapshot: snapshot, err: err}
	}
}
