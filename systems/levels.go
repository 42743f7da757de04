package systems

import (
	"fmt"

	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/content"
	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// LevelColumns is the width of the level select grid.
const LevelColumns = 2

// LevelCardRect returns the bounds of the i-th level card.
func LevelCardRect(i int) (x, y, w, h float64) {
	w, h = cfg.Layout.CardWidth, cfg.Layout.CardHeight
	gridW := LevelColumns*w + (LevelColumns-1)*cfg.Layout.CardGap
	x = (float64(cfg.C.Width)-gridW)/2 + float64(i%LevelColumns)*(w+cfg.Layout.CardGap)
	y = cfg.Layout.ContentY + 8 + float64(i/LevelColumns)*(h+cfg.Layout.CardGap)
	return x, y, w, h
}

// NewUpdateLevels creates the level select system.
func NewUpdateLevels(nav Navigator, levels []content.Level) ecs.System {
	return func(e *ecs.ECS) {
		if !UpdateMenuSelection(e) || len(levels) == 0 {
			return
		}
		menu := GetOrCreateMenu(e)
		Navigate(e, nav, levels[menu.SelectedIndex].Screen)
	}
}

// NewDrawLevels creates the level select renderer.
func NewDrawLevels(levels []content.Level) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		s := GetScreen(e)
		if s == nil {
			return
		}
		menu := GetOrCreateMenu(e)
		DrawTitle(screen, "SELECT LEVEL", s.Root.Get(effects.Opacity))

		heading := fonts.Heading.Get()
		body := fonts.Small.Get()
		for i, lvl := range levels {
			alpha := itemAlpha(s, i)
			x, y, w, h := LevelCardRect(i)
			y += itemOffset(s, i)

			border := cfg.Theme.Secondary
			if i == menu.SelectedIndex {
				pulse := 0.6 + 0.4*wave(s.Ticks, cfg.Timing.PulsePeriod)
				border = fade(cfg.Theme.Primary, pulse)
			}
			drawPanel(screen, x, y, w, h, fade(cfg.Theme.Panel, alpha), fade(border, alpha))

			badge := fmt.Sprintf("%d", lvl.Number)
			drawPanel(screen, x+8, y+8, 22, 22, fade(cfg.Theme.Primary, alpha), fade(cfg.Theme.Primary, alpha))
			drawCentered(screen, badge, heading, x+19, y+25, fade(cfg.Theme.Background, alpha))
			drawText(screen, fmt.Sprintf("LEVEL %d", lvl.Number), body, x+38, y+16, fade(cfg.Theme.TextDim, alpha))
			drawText(screen, lvl.Title, heading, x+38, y+30, fade(cfg.Theme.Neon, alpha))

			for j, line := range wrapText(lvl.Description, body, int(w)-16) {
				drawText(screen, line, body, x+8, y+50+float64(j)*cfg.Layout.LineHeight, fade(cfg.Theme.Text, alpha))
			}
		}
	}
}
