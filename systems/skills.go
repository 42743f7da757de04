package systems

import (
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/content"
	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/fonts"
	"github.com/automoto/arcade-portfolio/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const skillRowHeight = 22.0

// SkillRect returns the bounds of skill j of category c.
func SkillRect(categories, c, j int) (x, y, w, h float64) {
	m := cfg.Layout.Margin
	w = (float64(cfg.C.Width) - float64(categories+1)*m) / float64(categories)
	x = m + float64(c)*(w+m)
	y = cfg.Layout.ContentY + 20 + float64(j)*skillRowHeight
	return x, y, w, skillRowHeight - 4
}

// PowerUp plays the skill activation cue.
func PowerUp(e *ecs.ECS) {
	playScreenCue(e, sound.CuePowerup)
}

// UpdateSkills plays the power-up cue when a skill is activated.
func UpdateSkills(e *ecs.ECS) {
	if UpdateMenuSelection(e) {
		PowerUp(e)
	}
}

// NewDrawSkills renders the inventory: one column per category and the
// special items underneath.
func NewDrawSkills(p *content.Portfolio) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		s := GetScreen(e)
		if s == nil {
			return
		}
		root := s.Root.Get(effects.Opacity)
		DrawTitle(screen, "LEVEL 2: SKILLS", root)
		menu := GetOrCreateMenu(e)

		heading := fonts.Heading.Get()
		small := fonts.Small.Get()
		n := len(p.Skills)
		item := 0
		for c, cat := range p.Skills {
			x, _, w, _ := SkillRect(n, c, 0)
			drawText(screen, cat.Category, heading, x, cfg.Layout.ContentY+8, fade(cfg.Theme.Primary, root))
			for j, skill := range cat.Items {
				alpha := itemAlpha(s, item)
				_, y, _, h := SkillRect(n, c, j)
				y += itemOffset(s, item)

				border := cfg.Theme.Quaternary
				if item == menu.SelectedIndex {
					border = cfg.Theme.Neon
				}
				drawPanel(screen, x, y, w, h, fade(cfg.Theme.Panel, alpha), fade(border, alpha))
				drawText(screen, skill.Name, small, x+6, y+12, fade(cfg.Theme.Text, alpha))
				drawBar(screen, x+w*0.55, y+6, w*0.4, 6, float64(skill.Level)/100,
					fade(cfg.Theme.Neon, alpha), fade(cfg.Theme.Background, alpha))
				item++
			}
		}

		y := cfg.Layout.ContentY + 20 + 6*skillRowHeight + 16
		drawText(screen, "SPECIAL ITEMS", heading, cfg.Layout.Margin, y, fade(cfg.Yellow, root))
		colW := (float64(cfg.C.Width) - 2*cfg.Layout.Margin) / 2
		for i, it := range p.SpecialItems {
			x := cfg.Layout.Margin + float64(i%2)*colW
			iy := y + 16 + float64(i/2)*24
			drawText(screen, it.Name, small, x, iy, fade(cfg.Theme.Neon, root))
			drawText(screen, it.Description, small, x, iy+10, fade(cfg.Theme.TextDim, root))
		}
	}
}
