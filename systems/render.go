package systems

import (
	"image/color"
	"math"
	"strings"

	"github.com/automoto/arcade-portfolio/components"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// fade scales a color by alpha. color.RGBA is premultiplied, so every
// channel is scaled.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// textWidth measures s in face.
func textWidth(s string, face font.Face) int {
	return text.BoundString(face, s).Dx()
}

func drawText(screen *ebiten.Image, s string, face font.Face, x, y float64, c color.RGBA) {
	text.Draw(screen, s, face, int(x), int(y), c)
}

// drawCentered draws s horizontally centered on cx with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y float64, c color.RGBA) {
	text.Draw(screen, s, face, int(cx)-textWidth(s, face)/2, int(y), c)
}

// wrapText breaks s into lines no wider than maxW.
func wrapText(s string, face font.Face, maxW int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		line := ""
		for _, w := range words {
			next := w
			if line != "" {
				next = line + " " + w
			}
			if line != "" && textWidth(next, face) > maxW {
				lines = append(lines, line)
				line = w
				continue
			}
			line = next
		}
		lines = append(lines, line)
	}
	return lines
}

func drawPanel(screen *ebiten.Image, x, y, w, h float64, fill, border color.RGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fill, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, border, false)
}

// drawBar draws a horizontal meter filled to ratio (0..1).
func drawBar(screen *ebiten.Image, x, y, w, h, ratio float64, fg, bg color.RGBA) {
	ratio = math.Max(0, math.Min(1, ratio))
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), bg, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*ratio), float32(h), fg, false)
}

// blink is true for the first half of every period.
func blink(ticks, period int) bool {
	if period <= 0 {
		return true
	}
	return ticks%period < period/2
}

// wave returns sin over a period in frames, in -1..1.
func wave(ticks, period int) float64 {
	if period <= 0 {
		return 0
	}
	return math.Sin(2 * math.Pi * float64(ticks) / float64(period))
}

// itemAlpha combines the root and child opacity of item i.
func itemAlpha(s *components.ScreenData, i int) float64 {
	a := s.Root.Get(effects.Opacity)
	if t := s.Item(i); t != nil {
		a *= t.Get(effects.Opacity)
	}
	return a
}

// itemOffset returns the vertical entrance offset of item i.
func itemOffset(s *components.ScreenData, i int) float64 {
	if t := s.Item(i); t != nil {
		return t.Get(effects.OffsetY)
	}
	return 0
}

// DrawBackground fills the screen and draws the retro floor grid.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Theme.Background)

	s := GetScreen(ecs)
	alpha := 1.0
	if s != nil {
		alpha = s.Root.Get(effects.Opacity)
	}
	w := float32(cfg.C.Width)
	h := float32(cfg.C.Height)
	line := fade(cfg.Theme.Quaternary, 0.35*alpha)
	for y := h * 0.6; y < h; y += 18 {
		vector.StrokeLine(screen, 0, y, w, y, 1, line, false)
	}
	for x := float32(0); x <= w; x += 40 {
		vector.StrokeLine(screen, w/2+(x-w/2)*0.4, h*0.6, x, h, 1, line, false)
	}
}

// DrawCabinet draws the bezel around the play area and the screen title.
func DrawCabinet(ecs *ecs.ECS, screen *ebiten.Image) {
	w := float32(cfg.C.Width)
	h := float32(cfg.C.Height)
	vector.StrokeRect(screen, 2, 2, w-4, h-4, 4, cfg.Theme.Cabinet, false)
	vector.StrokeRect(screen, 6, 6, w-12, h-12, 1, fade(cfg.Theme.Secondary, 0.6), false)
}

// DrawTitle renders the descriptor title of the current screen.
func DrawTitle(screen *ebiten.Image, title string, alpha float64) {
	drawCentered(screen, title, fonts.Heading.Get(), float64(cfg.C.Width)/2, cfg.Layout.TitleY, fade(cfg.Theme.Primary, alpha))
}

// DrawStars renders the starfield with perspective projection.
func DrawStars(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetScreen(ecs)
	alpha := 1.0
	if s != nil {
		alpha = s.Root.Get(effects.Opacity)
	}
	cx := float64(cfg.C.Width) / 2
	cy := float64(cfg.C.Height) / 2
	components.Star.Each(ecs.World, func(e *donburi.Entry) {
		star := components.Star.Get(e)
		x := cx + star.X/star.Z*cx*0.5
		y := cy + star.Y/star.Z*cy*0.5
		if x < 0 || y < 0 || x > float64(cfg.C.Width) || y > float64(cfg.C.Height) {
			return
		}
		size := float32(math.Max(1, 3*(1-star.Z)))
		vector.FillRect(screen, float32(x), float32(y), size, size, fade(cfg.White, alpha*(1-star.Z)), false)
	})
}

// DrawButtons renders every visible button as an arcade panel.
func DrawButtons(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetScreen(ecs)
	face := fonts.Small.Get()
	components.Button.Each(ecs.World, func(e *donburi.Entry) {
		btn := components.Button.Get(e)
		if btn.Label == "" {
			return
		}
		obj := components.Object.Get(e).Object
		alpha := 1.0
		if s != nil {
			alpha = s.Root.Get(effects.Opacity)
		}
		dy := 0.0
		if btn.Target != nil {
			alpha *= btn.Target.Get(effects.Opacity)
			dy = btn.Target.Get(effects.OffsetY)
		}
		if alpha < visibleAlpha {
			return
		}

		fill, border, label := cfg.Theme.Panel, cfg.Theme.Secondary, cfg.Theme.Text
		switch {
		case btn.Disabled:
			label = cfg.Theme.TextDim
		case btn.Hovered:
			fill, border = fade(cfg.Theme.Primary, 0.5), cfg.Theme.Primary
		}
		drawPanel(screen, obj.X, obj.Y+dy, obj.W, obj.H, fade(fill, alpha), fade(border, alpha))
		drawCentered(screen, btn.Label, face, obj.X+obj.W/2, obj.Y+dy+obj.H/2+4, fade(label, alpha))
	})
}

// DrawFlash renders active full-screen flashes.
func DrawFlash(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Total <= 0 {
			return
		}
		a := float32(flash.Duration) / float32(flash.Total) * 0.6
		c := color.RGBA{
			R: uint8(flash.R * a * 255),
			G: uint8(flash.G * a * 255),
			B: uint8(flash.B * a * 255),
			A: uint8(a * 255),
		}
		vector.FillRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.C.Height), c, false)
	})
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
