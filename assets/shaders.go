package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// CRTShader adds scanlines, flicker and edge glow to the final frame
	CRTShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	crtSrc, err := shaderFS.ReadFile("shaders/crt.kage")
	if err != nil {
		return fmt.Errorf("failed to read crt shader: %w", err)
	}
	CRTShader, err = ebiten.NewShader(crtSrc)
	if err != nil {
		return fmt.Errorf("failed to compile crt shader: %w", err)
	}
	return nil
}
