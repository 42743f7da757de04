package systems

import (
	"github.com/automoto/arcade-portfolio/components"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/navigation"
	"github.com/automoto/arcade-portfolio/sound"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}

// UpdateMenuSelection moves the selection with the directional actions and
// reports whether the select action fired.
func UpdateMenuSelection(e *ecs.ECS) bool {
	menu := GetOrCreateMenu(e)
	input := getOrCreateInput(e)
	cols := menu.Columns
	if cols < 1 {
		cols = 1
	}

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		menu.Move(-cols)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		menu.Move(cols)
	}
	if cols > 1 {
		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			menu.Move(-1)
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			menu.Move(1)
		}
	}
	return GetAction(input, cfg.ActionMenuSelect).JustPressed
}

// NewUpdateBack leaves the screen for `to` when the back action fires.
func NewUpdateBack(nav Navigator, to navigation.ScreenID) ecs.System {
	return func(e *ecs.ECS) {
		if GetAction(getOrCreateInput(e), cfg.ActionMenuBack).JustPressed {
			Navigate(e, nav, to)
		}
	}
}

// playScreenCue plays a cue through the screen's scope so teardown stops it.
func playScreenCue(e *ecs.ECS, cue sound.CueID) {
	if s := GetScreen(e); s != nil {
		sound.Cues.Play(s.Cues, cue)
	}
}
