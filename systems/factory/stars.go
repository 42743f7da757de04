package factory

import (
	"math/rand/v2"

	"github.com/automoto/arcade-portfolio/archetypes"
	"github.com/automoto/arcade-portfolio/components"
	"github.com/yohamta/donburi/ecs"
)

// CreateStarfield spawns n stars spread through the depth range.
func CreateStarfield(ecs *ecs.ECS, n int, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		star := archetypes.Star.Spawn(ecs)
		components.Star.SetValue(star, components.StarData{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
			Z: rng.Float64(),
		})
	}
}
