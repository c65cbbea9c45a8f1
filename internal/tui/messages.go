package tui

import (
	"github.com/MKhiriev/qryptshare/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks the root model to switch to Page. A non-nil Payload is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// modeSelectedMsg opens the form on the given mode.
type modeSelectedMsg struct {
	mode models.Mode
}

// exportDoneMsg reports the outcome of an export started from the form.
type exportDoneMsg struct {
	format models.OutputFormat
	path   string
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
