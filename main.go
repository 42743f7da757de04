package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/automoto/arcade-portfolio/assets"
	"github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/content"
	"github.com/automoto/arcade-portfolio/fonts"
	"github.com/automoto/arcade-portfolio/logger"
	"github.com/automoto/arcade-portfolio/navigation"
	"github.com/automoto/arcade-portfolio/scenes"
	"github.com/automoto/arcade-portfolio/sound"
	"github.com/automoto/arcade-portfolio/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// tearable scenes release their effects and cues when replaced.
type tearable interface {
	Teardown()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	env    *scenes.Env
	crt    systems.CRT
	log    zerolog.Logger
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	if old, ok := g.scene.(tearable); ok {
		old.Teardown()
	}
	g.scene = scene.(Scene)
}

func NewGame(env *scenes.Env) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		env:    env,
		log:    logger.GetLogger("scenes"),
	}
	g.show(env.Nav.Current())
	return g
}

func (g *Game) show(id navigation.ScreenID) {
	g.ChangeScene(scenes.New(id, g.env))
	g.log.Debug().Stringer("screen", id).Msg("showing screen")
}

// showing reports whether the current scene presents id.
func (g *Game) showing(id navigation.ScreenID) bool {
	s, ok := g.scene.(*scenes.ScreenScene)
	return ok && s.ID() == id
}

func (g *Game) Update() error {
	// rendering follows the machine; transitions made last tick land here
	if cur := g.env.Nav.Current(); !g.showing(cur) {
		g.show(cur)
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.crt.Begin(screen)
	g.scene.Draw(frame)
	g.crt.End(screen, frame)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "path to arcade.yaml (default: search ./arcade.yaml)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	settings.Apply()

	if err := logger.Initialize(settings.Log); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.CloseGlobal() }()
	appLog := logger.GetLogger("main")

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := assets.LoadShaders(); err != nil {
		appLog.Warn().Err(err).Msg("CRT shader unavailable, drawing without it")
	}

	portfolio, err := content.Load()
	if err != nil {
		log.Fatalf("Failed to load portfolio: %v", err)
	}

	systems.PreloadAllSFX()
	cues := systems.Cues()
	registry := navigation.DefaultRegistry()
	machine := navigation.NewMachine(registry, cues)
	machine.OnTransition(func(t navigation.Transition) {
		appLog.Debug().Stringer("from", t.From).Stringer("to", t.To).Stringer("trigger", t.Trigger).Msg("transition")
	})

	env := &scenes.Env{
		Nav:      machine,
		Registry: registry,
		Sound:    cues,
		Music:    sound.NewToggle(systems.Music(), config.Audio.Muted),
		Content:  portfolio,
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Window.Fullscreen)

	// the loading screen's entry cue is due before the first frame
	sound.Cues.Play(cues, registry[navigation.Loading].EntryCue)

	if err := ebiten.RunGame(NewGame(env)); err != nil {
		appLog.Error().Err(err).Msg("game exited with error")
		log.Fatal(err)
	}
}
