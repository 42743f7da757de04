package config

import "image/color"

// ThemeConfig holds the arcade palette.
type ThemeConfig struct {
	Primary    color.RGBA // pink, titles and highlights
	Secondary  color.RGBA // mauve, borders
	Tertiary   color.RGBA // purple, panels
	Quaternary color.RGBA // blue, inactive items
	Background color.RGBA
	Neon       color.RGBA // cyan, prompts and links
	Text       color.RGBA
	TextDim    color.RGBA
	Cabinet    color.RGBA // bezel around the screen area
	Panel      color.RGBA // translucent card background
}

// TimingConfig holds idle animation periods, in frames at 60 TPS.
type TimingConfig struct {
	BlinkPeriod   int     // PRESS START, INSERT COIN
	FloatPeriod   int     // floating sprite and coin bob
	FloatAmp      float64 // pixels
	PulsePeriod   int     // selected card glow
	StarCount     int
	StarSpeed     float64
	StartFadeSecs float64 // fade-out before leaving the start screen

	// Seconds
	LoadingProgress  float64
	LoadingFadeDelay float64
	LoadingFade      float64
	SubmitDelay      float64
}

// LayoutConfig positions shared screen elements.
type LayoutConfig struct {
	Margin       float64
	TitleY       float64
	ContentY     float64
	LineHeight   float64
	CardWidth    float64
	CardHeight   float64
	CardGap      float64
	BarWidth     float64
	BarHeight    float64
	MuteButton   float64 // square size, bottom right
	BackButtonW  float64
	BackButtonH  float64
	FooterY      float64
	MachineWidth float64
}

// CRTConfig controls the post-process shader.
type CRTConfig struct {
	Enabled   bool
	Scanlines float64 // 0..1 darkening of alternate lines
	Flicker   float64 // 0..1 brightness wobble
	Glow      float64 // 0..1 edge vignette strength
}

// DebugConfig contains debug toggles.
type DebugConfig struct {
	Hitboxes bool // draw pointer regions
}

// Config holds the logical screen size.
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Theme ThemeConfig
var Timing TimingConfig
var Layout LayoutConfig
var CRT CRTConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "JaePyJs ARCADE",
	}

	Theme = ThemeConfig{
		Primary:    color.RGBA{R: 0xF6, G: 0x72, B: 0x80, A: 255},
		Secondary:  color.RGBA{R: 0xC0, G: 0x6C, B: 0x84, A: 255},
		Tertiary:   color.RGBA{R: 0x6C, G: 0x5B, B: 0x7B, A: 255},
		Quaternary: color.RGBA{R: 0x35, G: 0x5C, B: 0x7D, A: 255},
		Background: color.RGBA{R: 0x22, G: 0x22, B: 0x3B, A: 255},
		Neon:       color.RGBA{R: 0x4E, G: 0xCD, B: 0xC4, A: 255},
		Text:       White,
		TextDim:    color.RGBA{R: 180, G: 180, B: 200, A: 255},
		Cabinet:    color.RGBA{R: 20, G: 20, B: 36, A: 255},
		Panel:      color.RGBA{R: 0x6C, G: 0x5B, B: 0x7B, A: 110},
	}

	Timing = TimingConfig{
		BlinkPeriod:   60,
		FloatPeriod:   120,
		FloatAmp:      6,
		PulsePeriod:   90,
		StarCount:     80,
		StarSpeed:     0.6,
		StartFadeSecs: 1,

		LoadingProgress:  3,
		LoadingFadeDelay: 0.5,
		LoadingFade:      1,
		SubmitDelay:      1.5,
	}

	Layout = LayoutConfig{
		Margin:       24,
		TitleY:       40,
		ContentY:     72,
		LineHeight:   14,
		CardWidth:    220,
		CardHeight:   96,
		CardGap:      16,
		BarWidth:     220,
		BarHeight:    10,
		MuteButton:   22,
		BackButtonW:  96,
		BackButtonH:  20,
		FooterY:      336,
		MachineWidth: 176,
	}

	CRT = CRTConfig{
		Enabled:   true,
		Scanlines: 0.25,
		Flicker:   0.03,
		Glow:      0.35,
	}

	Debug = DebugConfig{
		Hitboxes: false,
	}
}
