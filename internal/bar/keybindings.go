package bar

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeySelectPrev  = "left"
	KeySelectPrevH = "h"
	KeySelectNext  = "right"
	KeySelectNextL = "l"
	KeyCycle       = "tab"
	KeyGraph       = "g"
	KeyGraphAlt    = "enter"
	KeyToggleHelp  = "?"
	KeyCloseHelp   = "esc"
)

// HandleKeyMsg processes keyboard input.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key == KeyCloseHelp {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		m.stopAll()
		return true, tea.Quit

	case KeySelectPrev, KeySelectPrevH:
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case KeySelectNext, KeySelectNextL:
		if m.selected < len(m.widgets)-1 {
			m.selected++
		}
		return true, nil

	case KeyCycle:
		if len(m.widgets) > 0 {
			m.selected = (m.selected + 1) % len(m.widgets)
		}
		return true, nil

	case KeyGraph, KeyGraphAlt:
		m.launchGraph()
		return true, nil
	}

	return false, nil
}
