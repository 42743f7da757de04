// Package scenes builds one donburi world per screen. The Game asks for a
// new scene whenever the navigation machine's current screen changes and
// tears the old one down.
package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arcade-portfolio/components"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/content"
	"github.com/automoto/arcade-portfolio/logger"
	"github.com/automoto/arcade-portfolio/navigation"
	"github.com/automoto/arcade-portfolio/sound"
	"github.com/automoto/arcade-portfolio/systems"
	"github.com/automoto/arcade-portfolio/systems/factory"
)

// Env is what every scene needs from the process.
type Env struct {
	Nav      *navigation.Machine
	Registry navigation.Registry
	Sound    sound.Service
	Music    *sound.Toggle
	Content  *content.Portfolio
}

// builder populates a freshly created world for one screen.
type builder func(s *ScreenScene) error

var builders = map[navigation.ScreenID]builder{
	navigation.Loading:  buildLoading,
	navigation.Start:    buildStart,
	navigation.Levels:   buildLevels,
	navigation.About:    buildAbout,
	navigation.Skills:   buildSkills,
	navigation.Projects: buildProjects,
	navigation.Contact:  buildContact,
}

// ScreenScene presents one screen.
type ScreenScene struct {
	id   navigation.ScreenID
	desc navigation.Descriptor
	env  *Env
	ecs  *ecs.ECS
	once sync.Once
	log  zerolog.Logger

	torndown bool
}

// New creates the scene for id. The world is built on the first Update.
func New(id navigation.ScreenID, env *Env) *ScreenScene {
	desc, _ := env.Registry.Lookup(id)
	return &ScreenScene{
		id:   id,
		desc: desc,
		env:  env,
		log:  logger.GetLogger("scenes"),
	}
}

// ID returns the screen the scene presents.
func (s *ScreenScene) ID() navigation.ScreenID {
	return s.id
}

func (s *ScreenScene) Update() {
	if s.torndown {
		return
	}
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *ScreenScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// Teardown cancels the screen's effects and stops every cue it started.
// Visual state is left as it is. Calling it again is a no-op.
func (s *ScreenScene) Teardown() {
	if s.torndown || s.ecs == nil {
		s.torndown = true
		return
	}
	s.torndown = true

	if screen := systems.GetScreen(s.ecs); screen != nil {
		screen.Fx.CancelAll()
		screen.Root.Detach()
		for _, t := range screen.Items {
			t.Detach()
		}
		screen.Cues.StopAll()
	}
	s.log.Debug().Stringer("screen", s.id).Msg("scene torn down")
}

func (s *ScreenScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(s.ecs, cfg.C.Width, cfg.C.Height, 16, 16)

	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.UpdatePointer)
	s.ecs.AddSystem(systems.UpdateScreen)
	s.ecs.AddSystem(systems.UpdateEffects)
	s.ecs.AddSystem(systems.UpdateHUD)

	s.ecs.AddRenderer(cfg.Default, systems.DrawBackground)

	build, ok := builders[s.id]
	if !ok {
		s.log.Error().Stringer("screen", s.id).Msg("no scene for screen")
		s.mount(0)
	} else if err := build(s); err != nil {
		s.log.Error().Err(err).Stringer("screen", s.id).Msg("failed to build scene")
	}

	factory.CreateMuteButton(s.ecs, func() { systems.ToggleMute(s.ecs) })

	s.ecs.AddRenderer(cfg.Default, systems.DrawButtons)
	s.ecs.AddRenderer(cfg.Default, systems.DrawCabinet)
	s.ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	s.ecs.AddRenderer(cfg.Overlay, systems.DrawFlash)
	s.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	s.log.Debug().Stringer("screen", s.id).Msg("scene configured")
}

// mount creates the screen singleton with n staggered children and starts
// the entry effects.
func (s *ScreenScene) mount(n int) *components.ScreenData {
	entry := factory.CreateScreen(s.ecs, s.desc, n, s.env.Sound, s.env.Music)
	return components.Screen.Get(entry)
}

// navButtons adds a button for every user edge out of the screen, centered
// above the footer.
func (s *ScreenScene) navButtons() {
	targets := lo.FilterMap(s.desc.Edges, func(e navigation.Edge, _ int) (navigation.ScreenID, bool) {
		return e.To, e.Trigger == navigation.TriggerUser
	})
	w, h := cfg.Layout.BackButtonW, cfg.Layout.BackButtonH
	gap := cfg.Layout.CardGap
	total := float64(len(targets))*w + float64(len(targets)-1)*gap
	x := (float64(cfg.C.Width) - total) / 2
	y := float64(cfg.C.Height) - cfg.Layout.Margin - h - 4

	for i, to := range targets {
		factory.CreateButton(s.ecs, x+float64(i)*(w+gap), y, w, h, factory.ButtonOpts{
			Label:   systems.NavLabel(s.id, to),
			OnClick: func() { systems.Navigate(s.ecs, s.env.Nav, to) },
			Index:   -1,
		})
	}
}

// back returns the first user edge, the screen the back action leads to.
func (s *ScreenScene) back() (navigation.ScreenID, bool) {
	e, ok := lo.Find(s.desc.Edges, func(e navigation.Edge) bool {
		return e.Trigger == navigation.TriggerUser
	})
	return e.To, ok
}
