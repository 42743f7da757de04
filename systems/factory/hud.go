package factory

import (
	"github.com/automoto/arcade-portfolio/archetypes"
	"github.com/automoto/arcade-portfolio/components"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMuteButton spawns the sound toggle in the bottom-right corner.
func CreateMuteButton(ecs *ecs.ECS, onClick func()) *donburi.Entry {
	size := cfg.Layout.MuteButton
	x := float64(cfg.C.Width) - cfg.Layout.Margin - size
	y := float64(cfg.C.Height) - cfg.Layout.Margin - size

	button := archetypes.Button.Spawn(ecs, tags.Mute)
	obj := resolv.NewObject(x, y, size, size, tags.ResolvButton)
	obj.Data = button

	components.Object.SetValue(button, components.ObjectData{Object: obj})
	components.Button.SetValue(button, components.ButtonData{OnClick: onClick, Index: -1})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return button
}
