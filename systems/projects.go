package systems

import (
	"github.com/automoto/arcade-portfolio/components"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/content"
	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/fonts"
	"github.com/automoto/arcade-portfolio/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const machineHeight = 150.0

// MachineRect returns the bounds of the i-th of n arcade machines.
func MachineRect(n, i int) (x, y, w, h float64) {
	w = cfg.Layout.MachineWidth
	total := float64(n)*w + float64(n-1)*cfg.Layout.CardGap
	x = (float64(cfg.C.Width)-total)/2 + float64(i)*(w+cfg.Layout.CardGap)
	return x, cfg.Layout.ContentY, w, machineHeight
}

// PlayButtonRect returns the bounds of the PLAY GAME button of a machine.
func PlayButtonRect(n, i int) (x, y, w, h float64) {
	mx, my, mw, mh := MachineRect(n, i)
	return mx + 20, my + mh - 28, mw - 40, 20
}

// PlayProject inserts a coin into the machine for id and selects it.
func PlayProject(e *ecs.ECS, id string) {
	entry, ok := components.Projects.First(e.World)
	if !ok {
		return
	}
	components.Projects.Get(entry).Selected = id
	playScreenCue(e, sound.CueCoin)
}

// NewUpdateProjects creates the projects system.
func NewUpdateProjects(projects []content.Project) ecs.System {
	return func(e *ecs.ECS) {
		if !UpdateMenuSelection(e) || len(projects) == 0 {
			return
		}
		PlayProject(e, projects[GetOrCreateMenu(e).SelectedIndex].ID)
	}
}

// NewDrawProjects renders the arcade machines and the high score table.
func NewDrawProjects(p *content.Portfolio) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		s := GetScreen(e)
		if s == nil {
			return
		}
		root := s.Root.Get(effects.Opacity)
		DrawTitle(screen, "LEVEL 3: PROJECTS", root)

		selected := ""
		if entry, ok := components.Projects.First(e.World); ok {
			selected = components.Projects.Get(entry).Selected
		}
		menu := GetOrCreateMenu(e)
		small := fonts.Small.Get()
		body := fonts.Body.Get()

		for i, pr := range p.Projects {
			alpha := itemAlpha(s, i)
			x, y, w, h := MachineRect(len(p.Projects), i)
			y += itemOffset(s, i)

			border := cfg.Theme.Secondary
			if i == menu.SelectedIndex {
				border = cfg.Theme.Primary
			}
			drawPanel(screen, x, y, w, h, fade(cfg.Theme.Cabinet, alpha), fade(border, alpha))
			// marquee and screen
			vector.FillRect(screen, float32(x+6), float32(y+6), float32(w-12), 18, fade(cfg.Theme.Primary, alpha*0.8), false)
			drawPanel(screen, x+10, y+30, w-20, h-66, fade(cfg.Theme.Background, alpha), fade(cfg.Theme.Quaternary, alpha))

			lines := wrapText(pr.Title, small, int(w)-16)
			drawCentered(screen, lines[0], small, x+w/2, y+18, fade(cfg.White, alpha))

			var detail []string
			if pr.ID == selected {
				drawCentered(screen, "NOW PLAYING", body, x+w/2, y+48, fade(cfg.BrightGreen, alpha))
				detail = wrapText(pr.Link, small, int(w)-28)
			} else {
				detail = append(lines[1:], wrapText(pr.Description, small, int(w)-28)...)
			}
			for j, line := range detail {
				drawText(screen, line, small, x+14, y+64+float64(j)*12, fade(cfg.Theme.Neon, alpha))
			}
		}

		y := cfg.Layout.ContentY + machineHeight + 16
		drawCentered(screen, "HIGH SCORES", fonts.Heading.Get(), float64(cfg.C.Width)/2, y, fade(cfg.Yellow, root))
		cx := float64(cfg.C.Width) / 2
		for i, hs := range p.HighScores {
			ry := y + 14 + float64(i)*11
			c := fade(cfg.Theme.Text, root)
			if i == 0 {
				c = fade(cfg.Gold, root)
			}
			drawText(screen, hs.Rank, small, cx-110, ry, c)
			drawText(screen, hs.Name, small, cx-70, ry, c)
			score := content.FormatScore(hs.Score)
			drawText(screen, score, small, cx+110-float64(textWidth(score, small)), ry, c)
		}
	}
}
