package components

import "github.com/yohamta/donburi"

// MenuData stores a keyboard-navigable selection on the current screen
type MenuData struct {
	SelectedIndex int // Current selection index
	Count         int // Number of selectable entries
	Columns       int // Entries per row; 0 or 1 means a vertical list
}

// Move shifts the selection by d with wrap-around.
func (m *MenuData) Move(d int) {
	if m.Count == 0 {
		return
	}
	m.SelectedIndex = ((m.SelectedIndex+d)%m.Count + m.Count) % m.Count
}

// Menu is the component type for screen selection state
var Menu = donburi.NewComponentType[MenuData]()
