package systems

import (
	"github.com/automoto/arcade-portfolio/assets"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// CRT renders a frame offscreen and composites it through the CRT shader.
type CRT struct {
	frame *ebiten.Image
	ticks int
}

// Begin returns the image the scene should draw into this frame.
func (c *CRT) Begin(screen *ebiten.Image) *ebiten.Image {
	if !cfg.CRT.Enabled || assets.CRTShader == nil {
		return screen
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if c.frame == nil || c.frame.Bounds().Dx() != w || c.frame.Bounds().Dy() != h {
		c.frame = ebiten.NewImage(w, h)
	}
	c.frame.Clear()
	return c.frame
}

// End composites the frame returned by Begin onto screen.
func (c *CRT) End(screen, frame *ebiten.Image) {
	if frame == screen {
		return
	}
	c.ticks++
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = frame
	op.Uniforms = map[string]any{
		"Time":      float32(c.ticks) * tickSeconds,
		"Scanlines": float32(cfg.CRT.Scanlines),
		"Flicker":   float32(cfg.CRT.Flicker),
		"Glow":      float32(cfg.CRT.Glow),
	}
	screen.DrawRectShader(w, h, assets.CRTShader, op)
}
