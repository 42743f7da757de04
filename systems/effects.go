package systems

import (
	"math/rand/v2"

	"github.com/automoto/arcade-portfolio/components"
	"github.com/automoto/arcade-portfolio/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the logical frame length at ebiten's default 60 TPS.
const tickSeconds = 1.0 / 60.0

var starRand = rand.New(rand.NewPCG(7, 11))

// UpdateScreen advances the screen's effect service and frame counter.
func UpdateScreen(ecs *ecs.ECS) {
	screen := GetScreen(ecs)
	if screen == nil {
		return
	}
	screen.Ticks++
	screen.Fx.Update(tickSeconds)
}

// UpdateEffects processes ambient visuals (starfield, flashes)
func UpdateEffects(ecs *ecs.ECS) {
	updateStars(ecs)
	updateFlashEffects(ecs)
}

// updateStars pulls stars toward the viewer and respawns them far away.
func updateStars(ecs *ecs.ECS) {
	speed := config.Timing.StarSpeed * 0.01
	components.Star.Each(ecs.World, func(e *donburi.Entry) {
		star := components.Star.Get(e)
		star.Z -= speed
		if star.Z <= 0.02 {
			star.X = starRand.Float64()*2 - 1
			star.Y = starRand.Float64()*2 - 1
			star.Z = 1
		}
	})
}

// updateFlashEffects decrements flash timers and removes expired flashes
func updateFlashEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
		if flash.Duration <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}

// GetScreen returns the scene's screen singleton, or nil before it exists.
func GetScreen(ecs *ecs.ECS) *components.ScreenData {
	entry, ok := components.Screen.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Screen.Get(entry)
}

// screenLeaving reports whether the screen is playing its leave effect.
func screenLeaving(ecs *ecs.ECS) bool {
	s := GetScreen(ecs)
	return s != nil && s.Exit
}
