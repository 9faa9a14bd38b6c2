package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// changeHandler is the part of the viewer the event loop drives
type changeHandler interface {
	OnChange() error
}

// fileChangedMsg is sent by the watcher for every notification
type fileChangedMsg struct{}

// Model serializes change notifications. The viewer draws to the terminal
// itself, so View is empty and the program runs without a renderer.
type Model struct {
	viewer  changeHandler
	changes int
	err     error
}

func newModel(viewer changeHandler) *Model {
	return &Model{viewer: viewer}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case fileChangedMsg:
		m.changes++
		if err := m.viewer.OnChange(); err != nil {
			m.err = err
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	return ""
}

// Err returns the error that stopped the loop, if any
func (m *Model) Err() error {
	return m.err
}

// Changes returns how many notifications were handled
func (m *Model) Changes() int {
	return m.changes
}
