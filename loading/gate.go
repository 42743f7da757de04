// Package loading implements the coin gate in front of the start screen: a
// simulated progress bar started by inserting a coin, followed by a fade-out
// that hands control to the start screen.
package loading

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/logger"
	"github.com/automoto/arcade-portfolio/navigation"
	"github.com/automoto/arcade-portfolio/sound"
)

// Navigator is the part of the navigation machine the gate drives.
type Navigator interface {
	RequestTransition(to navigation.ScreenID, trigger navigation.Trigger) (navigation.ScreenID, error)
}

// Config holds the gate timings in seconds.
type Config struct {
	ProgressDuration float64
	Steps            int
	FadeDelay        float64
	FadeDuration     float64
}

// DefaultConfig returns the arcade's gate timings.
func DefaultConfig() Config {
	return Config{
		ProgressDuration: 3,
		Steps:            20,
		FadeDelay:        0.5,
		FadeDuration:     1,
	}
}

// Gate converts a coin insertion into the loading -> start transition.
type Gate struct {
	fx   *effects.Service
	nav  Navigator
	cues sound.Service
	cfg  Config

	root *effects.Target
	bar  *effects.Target

	progress     int
	coinInserted bool
	completed    bool
	log          zerolog.Logger
}

// NewGate creates a gate that fades root when loading finishes. cues may be
// nil.
func NewGate(fx *effects.Service, nav Navigator, cues sound.Service, root *effects.Target, cfg Config) *Gate {
	return &Gate{
		fx:   fx,
		nav:  nav,
		cues: cues,
		cfg:  cfg,
		root: root,
		bar:  effects.NewTarget("loading-bar"),
		log:  logger.GetLogger("loading"),
	}
}

// InsertCoin starts loading. It returns false and does nothing if a coin was
// already inserted.
func (g *Gate) InsertCoin() bool {
	if g.coinInserted {
		return false
	}
	g.coinInserted = true
	sound.Cues.Play(g.cues, sound.CueCoin)
	g.log.Debug().Msg("coin inserted")

	g.fx.Animate(g.bar,
		effects.Changes{effects.Progress: {From: 0, To: 100}},
		effects.Config{Duration: g.cfg.ProgressDuration, Easing: effects.Steps(g.cfg.Steps)},
	).OnUpdate(func(t *effects.Target) {
		g.publish(t.Get(effects.Progress))
	}).OnComplete(g.fadeOut)
	return true
}

func (g *Gate) publish(v float64) {
	p := int(math.Round(v))
	if p > 100 {
		p = 100
	}
	if p > g.progress {
		g.progress = p
	}
}

func (g *Gate) fadeOut() {
	// the bar may complete early if it was detached; the display still ends full
	g.progress = 100
	g.fx.Animate(g.root,
		effects.Changes{effects.Opacity: {From: 1, To: 0}},
		effects.Config{Duration: g.cfg.FadeDuration, Delay: g.cfg.FadeDelay},
	).OnComplete(g.finish)
}

func (g *Gate) finish() {
	if g.completed {
		return
	}
	g.completed = true
	if _, err := g.nav.RequestTransition(navigation.Start, navigation.TriggerEffect); err != nil {
		g.log.Warn().Err(err).Msg("loading finished but start screen refused")
	}
}

// Progress returns the displayed percentage, 0 to 100.
func (g *Gate) Progress() int {
	return g.progress
}

// CoinInserted reports whether loading has begun.
func (g *Gate) CoinInserted() bool {
	return g.coinInserted
}

// Completed reports whether the gate has requested the start screen.
func (g *Gate) Completed() bool {
	return g.completed
}

// Bar returns the progress target.
func (g *Gate) Bar() *effects.Target {
	return g.bar
}
