package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/google/uuid"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// SignedInMsg carries the authenticated account out of the sign-in screen.
type SignedInMsg struct {
	AccountID uuid.UUID
	Name      string
}
