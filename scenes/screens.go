package scenes

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/arcade-portfolio/archetypes"
	"github.com/automoto/arcade-portfolio/components"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/contact"
	"github.com/automoto/arcade-portfolio/loading"
	"github.com/automoto/arcade-portfolio/systems"
	"github.com/automoto/arcade-portfolio/systems/factory"
	"github.com/automoto/arcade-portfolio/ui"
)

func buildLoading(s *ScreenScene) error {
	screen := s.mount(0)

	gate := loading.NewGate(screen.Fx, s.env.Nav, screen.Cues, screen.Root, loading.Config{
		ProgressDuration: cfg.Timing.LoadingProgress,
		Steps:            loading.DefaultConfig().Steps,
		FadeDelay:        cfg.Timing.LoadingFadeDelay,
		FadeDuration:     cfg.Timing.LoadingFade,
	})
	entry := archetypes.Loading.Spawn(s.ecs)
	components.Loading.SetValue(entry, components.LoadingData{Gate: gate})

	// the prompt and the coin under it are clickable
	cx := float64(cfg.C.Width) / 2
	cy := float64(cfg.C.Height) / 2
	factory.CreateButton(s.ecs, cx-60, cy+44, 120, 64, factory.ButtonOpts{
		OnClick: func() { systems.InsertCoin(s.ecs) },
		Index:   -1,
	})

	s.ecs.AddSystem(systems.UpdateLoading)
	s.ecs.AddRenderer(cfg.Default, systems.DrawLoading)
	return nil
}

func buildStart(s *ScreenScene) error {
	s.mount(1)
	factory.CreateStarfield(s.ecs, cfg.Timing.StarCount, rand.New(rand.NewPCG(1, 2)))
	systems.DropTitle(s.ecs)

	w := 140.0
	factory.CreateButton(s.ecs, (float64(cfg.C.Width)-w)/2, 254, w, 22, factory.ButtonOpts{
		OnClick: func() { systems.PressStart(s.ecs, s.env.Nav) },
		Index:   -1,
	})

	s.ecs.AddSystem(systems.NewUpdateStart(s.env.Nav))
	s.ecs.AddRenderer(cfg.Default, systems.DrawStars)
	s.ecs.AddRenderer(cfg.Default, systems.DrawStart)
	return nil
}

func buildLevels(s *ScreenScene) error {
	levels := s.env.Content.Levels
	screen := s.mount(len(levels))
	factory.CreateMenu(s.ecs, len(levels), systems.LevelColumns)

	for i, lvl := range levels {
		to := lvl.Screen
		x, y, w, h := systems.LevelCardRect(i)
		factory.CreateButton(s.ecs, x, y, w, h, factory.ButtonOpts{
			OnClick: func() { systems.Navigate(s.ecs, s.env.Nav, to) },
			Target:  screen.Item(i),
			Index:   i,
		})
	}

	s.ecs.AddSystem(systems.NewUpdateLevels(s.env.Nav, levels))
	s.ecs.AddRenderer(cfg.Default, systems.NewDrawLevels(levels))
	return nil
}

func buildAbout(s *ScreenScene) error {
	player := s.env.Content.Player
	s.mount(len(player.Stats))
	s.navButtons()
	s.backAction()

	s.ecs.AddRenderer(cfg.Default, systems.NewDrawAbout(player))
	return nil
}

func buildSkills(s *ScreenScene) error {
	p := s.env.Content
	screen := s.mount(p.SkillCount())
	factory.CreateMenu(s.ecs, p.SkillCount(), 1)

	item := 0
	for c, cat := range p.Skills {
		for j := range cat.Items {
			x, y, w, h := systems.SkillRect(len(p.Skills), c, j)
			factory.CreateButton(s.ecs, x, y, w, h, factory.ButtonOpts{
				OnClick: func() { systems.PowerUp(s.ecs) },
				Target:  screen.Item(item),
				Index:   item,
			})
			item++
		}
	}
	s.navButtons()
	s.backAction()

	s.ecs.AddSystem(systems.UpdateSkills)
	s.ecs.AddRenderer(cfg.Default, systems.NewDrawSkills(p))
	return nil
}

func buildProjects(s *ScreenScene) error {
	projects := s.env.Content.Projects
	screen := s.mount(len(projects))
	factory.CreateMenu(s.ecs, len(projects), len(projects))
	archetypes.Projects.Spawn(s.ecs)

	for i, pr := range projects {
		id := pr.ID
		x, y, w, h := systems.PlayButtonRect(len(projects), i)
		factory.CreateButton(s.ecs, x, y, w, h, factory.ButtonOpts{
			Label:   "PLAY GAME",
			OnClick: func() { systems.PlayProject(s.ecs, id) },
			Target:  screen.Item(i),
			Index:   i,
		})
	}
	s.navButtons()
	s.backAction()

	s.ecs.AddSystem(systems.NewUpdateProjects(projects))
	s.ecs.AddRenderer(cfg.Default, systems.NewDrawProjects(s.env.Content))
	return nil
}

func buildContact(s *ScreenScene) error {
	screen := s.mount(1)

	form := contact.NewForm(screen.Cues, cfg.Timing.SubmitDelay)
	entry := archetypes.Contact.Spawn(s.ecs)
	components.Contact.SetValue(entry, components.ContactData{Form: form})

	formUI, err := ui.NewContactUI(form, 360, systems.ContactFormTop)
	if err != nil {
		return fmt.Errorf("failed to build contact form: %w", err)
	}
	s.navButtons()

	s.ecs.AddSystem(systems.NewUpdateContact(s.env.Nav, formUI))
	s.ecs.AddRenderer(cfg.Default, systems.NewDrawContact(formUI, s.env.Content.Social))
	return nil
}

// backAction wires the back key to the first user edge.
func (s *ScreenScene) backAction() {
	if to, ok := s.back(); ok {
		s.ecs.AddSystem(systems.NewUpdateBack(s.env.Nav, to))
	}
}
