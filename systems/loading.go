package systems

import (
	"fmt"

	"github.com/automoto/arcade-portfolio/components"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/fonts"
	"github.com/automoto/arcade-portfolio/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InsertCoin feeds the loading gate and flashes the screen on the first coin.
func InsertCoin(ecs *ecs.ECS) {
	entry, ok := components.Loading.First(ecs.World)
	if !ok {
		return
	}
	if components.Loading.Get(entry).Gate.InsertCoin() {
		factory.CreateFlash(ecs, 12, 1, 0.84, 0)
	}
}

// UpdateLoading handles the insert coin action.
func UpdateLoading(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionInsertCoin).JustPressed {
		InsertCoin(ecs)
	}
}

// DrawLoading renders the progress bar and the coin prompt.
func DrawLoading(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetScreen(ecs)
	entry, ok := components.Loading.First(ecs.World)
	if s == nil || !ok {
		return
	}
	gate := components.Loading.Get(entry).Gate
	alpha := s.Root.Get(effects.Opacity)
	cx := float64(cfg.C.Width) / 2
	cy := float64(cfg.C.Height) / 2

	DrawTitle(screen, "LOADING GAME DATA...", alpha)

	barX := cx - cfg.Layout.BarWidth/2
	drawPanel(screen, barX-4, cy-4, cfg.Layout.BarWidth+8, cfg.Layout.BarHeight+8,
		fade(cfg.Theme.Cabinet, alpha), fade(cfg.Theme.Secondary, alpha))
	drawBar(screen, barX, cy, cfg.Layout.BarWidth, cfg.Layout.BarHeight,
		float64(gate.Progress())/100, fade(cfg.Theme.Neon, alpha), fade(cfg.Theme.Background, alpha))

	small := fonts.Small.Get()
	drawCentered(screen, fmt.Sprintf("%d%%", gate.Progress()), small, cx, cy+cfg.Layout.BarHeight+20, fade(cfg.Theme.Text, alpha))

	if !gate.CoinInserted() {
		if blink(s.Ticks, cfg.Timing.BlinkPeriod) {
			drawCentered(screen, "INSERT COIN", fonts.Body.Get(), cx, cy+60, fade(cfg.Yellow, alpha))
		}
		drawCoin(screen, cx, cy+90+cfg.Timing.FloatAmp*wave(s.Ticks, cfg.Timing.FloatPeriod), alpha)
		return
	}
	if gate.Progress() >= 100 {
		drawCentered(screen, "READY!", fonts.Body.Get(), cx, cy+60, fade(cfg.BrightGreen, alpha))
	}
}

// drawCoin draws a pixel coin centered on (cx, cy).
func drawCoin(screen *ebiten.Image, cx, cy, alpha float64) {
	r := 9.0
	drawPanel(screen, cx-r, cy-r, 2*r, 2*r, fade(cfg.Gold, alpha), fade(cfg.Yellow, alpha))
	drawCentered(screen, "$", fonts.Small.Get(), cx, cy+4, fade(cfg.Theme.Cabinet, alpha))
}
