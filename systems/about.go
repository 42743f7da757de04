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

// NewDrawAbout renders the character sheet: stat bars growing in one by
// one, the backstory and the special ability.
func NewDrawAbout(player content.Player) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		s := GetScreen(e)
		if s == nil {
			return
		}
		root := s.Root.Get(effects.Opacity)
		DrawTitle(screen, "LEVEL 1: ABOUT ME", root)

		heading := fonts.Heading.Get()
		body := fonts.Body.Get()
		small := fonts.Small.Get()
		m := cfg.Layout.Margin
		colW := (float64(cfg.C.Width) - 3*m) / 2
		y := cfg.Layout.ContentY

		drawPanel(screen, m, y-6, colW, 230, fade(cfg.Theme.Panel, root), fade(cfg.Theme.Secondary, root))
		drawText(screen, player.Name, heading, m+10, y+14, fade(cfg.Theme.Primary, root))
		drawText(screen, fmt.Sprintf("CLASS: %s   LV %d", player.Class, player.Level), small, m+10, y+30, fade(cfg.Theme.Neon, root))

		barW := colW - 130
		for i, stat := range player.Stats {
			alpha := itemAlpha(s, i)
			sy := y + 52 + float64(i)*28 + itemOffset(s, i)
			width := 1.0
			if t := s.Item(i); t != nil {
				width = t.Get(effects.Width)
			}
			drawText(screen, stat.Name, small, m+10, sy+8, fade(cfg.Theme.Text, alpha))
			drawBar(screen, m+110, sy, barW*width, cfg.Layout.BarHeight,
				float64(stat.Value)/100, fade(cfg.Theme.Primary, alpha), fade(cfg.Theme.Background, alpha))
			drawText(screen, fmt.Sprintf("%d", stat.Value), small, m+116+barW, sy+8, fade(cfg.Theme.TextDim, alpha))
		}

		x := 2*m + colW
		drawPanel(screen, x, y-6, colW, 230, fade(cfg.Theme.Panel, root), fade(cfg.Theme.Secondary, root))
		drawText(screen, "BACKSTORY", heading, x+10, y+14, fade(cfg.Theme.Primary, root))
		lines := wrapText(player.Backstory, small, int(colW)-20)
		for i, line := range lines {
			drawText(screen, line, small, x+10, y+32+float64(i)*cfg.Layout.LineHeight, fade(cfg.Theme.Text, root))
		}

		ay := y + 40 + float64(len(lines))*cfg.Layout.LineHeight
		drawText(screen, "SPECIAL ABILITY: "+player.Ability.Name, body, x+10, ay, fade(cfg.Yellow, root))
		for i, line := range wrapText(player.Ability.Description, small, int(colW)-20) {
			drawText(screen, line, small, x+10, ay+16+float64(i)*cfg.Layout.LineHeight, fade(cfg.Theme.TextDim, root))
		}
	}
}
