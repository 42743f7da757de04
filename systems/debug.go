package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/arcade-portfolio/components"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines pointer regions and prints effect counters.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvCursor) {
				c = color.RGBA{255, 0, 0, 255}
			}

			// Draw outline
			vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(obj.X), float32(obj.Y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(obj.X), float32(obj.Y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(obj.X+obj.W-1), float32(obj.Y), 1, float32(obj.H), c, false) // Right
		}
	}

	if s := GetScreen(ecs); s != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  tps %.0f  fx %d  t %.2fs",
			s.ID, ebiten.ActualTPS(), s.Fx.Active(), s.Fx.Elapsed()), 10, 10)
	}
}
