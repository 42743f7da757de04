package systems

import (
	"image/color"

	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/fonts"
	"github.com/automoto/arcade-portfolio/navigation"
	"github.com/automoto/arcade-portfolio/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// titleDrop is the start screen's title entrance.
var titleDrop = effects.Spec{
	Changes: effects.Changes{effects.OffsetY: {From: -120, To: 0}},
	Config:  effects.Config{Duration: 1.5, Delay: 0.3, Easing: effects.Named("elastic.out")},
}

// DropTitle schedules the title drop on the first child of the screen.
func DropTitle(ecs *ecs.ECS) {
	if s := GetScreen(ecs); s != nil && s.Item(0) != nil {
		s.Fx.Run(titleDrop, s.Item(0))
	}
}

// PressStart plays the start cue, starts the music and fades the screen out
// before moving to level select.
func PressStart(ecs *ecs.ECS, nav Navigator) {
	s := GetScreen(ecs)
	if s == nil || s.Exit {
		return
	}
	s.Exit = true

	sound.Cues.Play(s.Cues, sound.CueStart)
	if audio := GetOrCreateAudio(ecs); audio.Music != nil {
		audio.Music.Start()
	}

	s.Fx.Animate(s.Root,
		effects.Changes{effects.Opacity: {From: s.Root.Get(effects.Opacity), To: 0}},
		effects.Config{Duration: cfg.Timing.StartFadeSecs},
	).OnComplete(func() {
		s.Exit = false
		Navigate(ecs, nav, navigation.Levels)
	})
}

// NewUpdateStart creates the start screen system.
func NewUpdateStart(nav Navigator) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PressStart(e, nav)
		}
	}
}

// DrawStart renders the title, the floating hero and the blinking prompt.
func DrawStart(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetScreen(ecs)
	if s == nil {
		return
	}
	alpha := s.Root.Get(effects.Opacity)
	cx := float64(cfg.C.Width) / 2

	titleY := 90 + itemOffset(s, 0)
	drawCentered(screen, "JaePyJs", fonts.Title.Get(), cx, titleY, fade(cfg.Theme.Primary, alpha))
	drawCentered(screen, "ADVENTURE", fonts.Title.Get(), cx, titleY+30, fade(cfg.Theme.Neon, alpha))

	heroY := 180 + cfg.Timing.FloatAmp*wave(s.Ticks, cfg.Timing.FloatPeriod)
	drawHero(screen, cx, heroY, alpha)

	if blink(s.Ticks, cfg.Timing.BlinkPeriod) && !s.Exit {
		drawCentered(screen, "PRESS START", fonts.Body.Get(), cx, 270, fade(cfg.Yellow, alpha))
	}
	drawCentered(screen, "(c) 2024 JaePyJs", fonts.Small.Get(), cx, 300, fade(cfg.Theme.TextDim, alpha))
}

// heroSprite is an 8x8 pixel figure; each rune selects a palette entry.
var heroSprite = []string{
	"..pppp..",
	".pppppp.",
	"..ffff..",
	"..f.f.f.",
	".nnnnnn.",
	"f.nnnn.f",
	"..b..b..",
	".bb..bb.",
}

func drawHero(screen *ebiten.Image, cx, cy, alpha float64) {
	const px = 4
	palette := map[byte]color.RGBA{
		'p': cfg.Theme.Primary,
		'f': rgb(255, 213, 170),
		'n': cfg.Theme.Neon,
		'b': cfg.Theme.Quaternary,
	}
	x0 := cx - float64(len(heroSprite[0])*px)/2
	y0 := cy - float64(len(heroSprite)*px)/2
	for row, line := range heroSprite {
		for col := 0; col < len(line); col++ {
			c, ok := palette[line[col]]
			if !ok {
				continue
			}
			vector.FillRect(screen, float32(x0+float64(col*px)), float32(y0+float64(row*px)), px, px, fade(c, alpha), false)
		}
	}
}
