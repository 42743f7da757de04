package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/navigation"
	"github.com/automoto/arcade-portfolio/sound"
)

// ScreenData is the singleton describing the screen a scene presents.
type ScreenData struct {
	ID     navigation.ScreenID
	Root   *effects.Target   // whole-screen opacity
	Items  []*effects.Target // staggered children, display order
	Fx     *effects.Service
	Cues   *sound.Scope
	Ticks  int  // frames since the scene was built
	Exit   bool // a leave effect is running; ignore input
	Typing bool // a text field has focus; hotkeys are off
}

var Screen = donburi.NewComponentType[ScreenData]()

// Item returns the i-th staggered child, or nil.
func (s *ScreenData) Item(i int) *effects.Target {
	if i < 0 || i >= len(s.Items) {
		return nil
	}
	return s.Items[i]
}
