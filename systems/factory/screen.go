package factory

import (
	"github.com/automoto/arcade-portfolio/archetypes"
	"github.com/automoto/arcade-portfolio/components"
	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/navigation"
	"github.com/automoto/arcade-portfolio/sound"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScreen spawns the screen singleton with a fresh effect service, a
// root target and n staggered children, then schedules the descriptor's
// entry effects on them.
func CreateScreen(ecs *ecs.ECS, desc navigation.Descriptor, n int, cues sound.Service, music *sound.Toggle) *donburi.Entry {
	screen := archetypes.Screen.Spawn(ecs)

	fx := effects.NewService()
	root := effects.NewTarget(desc.ID.String())
	items := effects.Targets(desc.ID.String()+"-item", n)
	scope := sound.NewScope(cues)

	components.Screen.SetValue(screen, components.ScreenData{
		ID:    desc.ID,
		Root:  root,
		Items: items,
		Fx:    fx,
		Cues:  scope,
	})
	components.Audio.SetValue(screen, components.AudioData{
		Cues:  scope,
		Music: music,
	})

	desc.Enter(fx, root, items)
	return screen
}

// CreateMenu spawns the selection singleton.
func CreateMenu(ecs *ecs.ECS, count, columns int) *donburi.Entry {
	menu := archetypes.Menu.Spawn(ecs)
	components.Menu.SetValue(menu, components.MenuData{Count: count, Columns: columns})
	return menu
}

// CreateFlash starts a full-screen flash lasting frames ticks.
func CreateFlash(ecs *ecs.ECS, frames int, r, g, b float32) *donburi.Entry {
	flash := archetypes.Flash.Spawn(ecs)
	components.Flash.SetValue(flash, components.FlashData{Duration: frames, Total: frames, R: r, G: g, B: b})
	return flash
}
