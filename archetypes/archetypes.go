package archetypes

import (
	"github.com/automoto/arcade-portfolio/components"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Screen = newArchetype(
		components.Screen,
		components.Audio,
	)
	Space = newArchetype(
		components.Space,
		components.Object, // the pointer
	)
	Button = newArchetype(
		tags.Button,
		components.Button,
		components.Object,
	)
	Star = newArchetype(
		tags.Star,
		components.Star,
	)
	Menu = newArchetype(
		components.Menu,
	)
	Flash = newArchetype(
		components.Flash,
	)
	Loading = newArchetype(
		components.Loading,
	)
	Contact = newArchetype(
		components.Contact,
	)
	Projects = newArchetype(
		components.Projects,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
