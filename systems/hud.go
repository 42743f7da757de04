package systems

import (
	"fmt"

	"github.com/automoto/arcade-portfolio/components"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/fonts"
	"github.com/automoto/arcade-portfolio/logger"
	"github.com/automoto/arcade-portfolio/navigation"
	"github.com/automoto/arcade-portfolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ToggleMute flips the background music mute state of the scene.
func ToggleMute(ecs *ecs.ECS) {
	audio := GetOrCreateAudio(ecs)
	if audio.Music == nil {
		return
	}
	muted := audio.Music.ToggleMute()
	log := logger.GetLogger("audio")
	log.Info().Bool("muted", muted).Msg("music toggled")
}

// UpdateHUD handles the global keys: mute and the debug overlay.
func UpdateHUD(ecs *ecs.ECS) {
	if s := GetScreen(ecs); s != nil && s.Typing {
		return
	}
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute(ecs)
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		cfg.Debug.Hitboxes = !cfg.Debug.Hitboxes
	}
}

// DrawHUD renders the credit counter and the mute button.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetScreen(ecs)
	if s == nil {
		return
	}
	small := fonts.Small.Get()

	credits := 1
	if s.ID == navigation.Loading {
		credits = 0
		if entry, ok := components.Loading.First(ecs.World); ok && components.Loading.Get(entry).Gate.CoinInserted() {
			credits = 1
		}
	}
	y := float64(cfg.C.Height) - cfg.Layout.Margin
	drawText(screen, fmt.Sprintf("CREDITS: %d", credits), small, cfg.Layout.Margin, y, cfg.Theme.TextDim)

	entry, ok := tags.Mute.First(ecs.World)
	if !ok {
		return
	}
	btn := components.Button.Get(entry)
	obj := components.Object.Get(entry).Object
	border := cfg.Theme.Secondary
	if btn.Hovered {
		border = cfg.Theme.Primary
	}
	drawPanel(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Theme.Panel, border)
	drawSpeaker(screen, obj.X, obj.Y, obj.W, musicMuted(ecs))
}

func musicMuted(ecs *ecs.ECS) bool {
	audio := GetOrCreateAudio(ecs)
	return audio.Music != nil && audio.Music.Muted()
}

// drawSpeaker draws a speaker glyph, crossed out when muted.
func drawSpeaker(screen *ebiten.Image, x, y, size float64, muted bool) {
	c := cfg.Theme.Neon
	u := float32(size) / 8
	ox, oy := float32(x), float32(y)

	vector.FillRect(screen, ox+2*u, oy+3*u, u, 2*u, c, false)
	vector.FillRect(screen, ox+3*u, oy+2*u, u, 4*u, c, false)
	vector.FillRect(screen, ox+4*u, oy+u, u, 6*u, c, false)

	if muted {
		vector.StrokeLine(screen, ox+1.5*u, oy+1.5*u, ox+6.5*u, oy+6.5*u, 1.5, cfg.Red, false)
		return
	}
	vector.StrokeLine(screen, ox+6*u, oy+3*u, ox+6*u, oy+5*u, 1, c, false)
}
