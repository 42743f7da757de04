package systems

import (
	"github.com/automoto/arcade-portfolio/components"
	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// visibleAlpha is the opacity below which a button ignores the pointer.
const visibleAlpha = 0.05

// UpdatePointer moves the cursor object, marks the button under it as
// hovered and fires its click handler. Must run after UpdateInput.
func UpdatePointer(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	cursor := components.Object.Get(spaceEntry).Object
	cursor.X = float64(input.CursorX)
	cursor.Y = float64(input.CursorY)
	cursor.Update()

	hovered := hoveredButton(ecs)

	components.Button.Each(ecs.World, func(e *donburi.Entry) {
		components.Button.Get(e).Hovered = e == hovered
	})
	if hovered == nil {
		return
	}

	btn := components.Button.Get(hovered)
	if btn.Index >= 0 && input.LastInputMethod == components.InputMouse {
		if menuEntry, ok := components.Menu.First(ecs.World); ok {
			components.Menu.Get(menuEntry).SelectedIndex = btn.Index
		}
	}
	if input.Clicked && !btn.Disabled && !screenLeaving(ecs) && btn.OnClick != nil {
		btn.OnClick()
	}
}

func hoveredButton(ecs *ecs.ECS) *donburi.Entry {
	spaceEntry, _ := components.Space.First(ecs.World)
	cursor := components.Object.Get(spaceEntry).Object

	check := cursor.Check(0, 0, tags.ResolvButton)
	if check == nil {
		return nil
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvButton) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		btn := components.Button.Get(entry)
		if btn.Target != nil && btn.Target.Get(effects.Opacity) < visibleAlpha {
			continue
		}
		return entry
	}
	return nil
}
