package factory

import (
	"github.com/automoto/arcade-portfolio/archetypes"
	"github.com/automoto/arcade-portfolio/components"
	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ButtonOpts describes a clickable region.
type ButtonOpts struct {
	Label   string
	OnClick func()
	Target  *effects.Target
	Index   int // menu slot, -1 for none
}

// CreateButton spawns a button and registers its hit region in the space.
func CreateButton(ecs *ecs.ECS, x, y, w, h float64, opts ButtonOpts) *donburi.Entry {
	button := archetypes.Button.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvButton)
	obj.Data = button // Link for O(1) lookup

	components.Object.SetValue(button, components.ObjectData{Object: obj})
	components.Button.SetValue(button, components.ButtonData{
		Label:   opts.Label,
		OnClick: opts.OnClick,
		Target:  opts.Target,
		Index:   opts.Index,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return button
}
