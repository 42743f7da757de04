package factory

import (
	"github.com/automoto/arcade-portfolio/archetypes"
	"github.com/automoto/arcade-portfolio/components"
	"github.com/automoto/arcade-portfolio/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the pointer hit space and the one-pixel cursor object
// that is checked against button regions.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)

	cursor := resolv.NewObject(-1, -1, 1, 1, tags.ResolvCursor)
	cursor.Data = space
	spaceData.Add(cursor)
	components.Object.SetValue(space, components.ObjectData{Object: cursor})

	return space
}
