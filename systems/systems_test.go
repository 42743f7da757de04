package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arcade-portfolio/archetypes"
	"github.com/automoto/arcade-portfolio/components"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/navigation"
	"github.com/automoto/arcade-portfolio/sound"
	"github.com/automoto/arcade-portfolio/sound/soundtest"
	"github.com/automoto/arcade-portfolio/systems/factory"
)

type world struct {
	ecs    *ecs.ECS
	screen *components.ScreenData
	nav    *navigation.Machine
	rec    *soundtest.Recorder
	track  *soundtest.Track
}

// newWorld builds a scene world for id with the machine already there.
func newWorld(t *testing.T, id navigation.ScreenID, items int) *world {
	t.Helper()
	w := &world{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		rec:   soundtest.NewRecorder(),
		track: &soundtest.Track{},
	}
	w.nav = navigation.NewMachine(navigation.DefaultRegistry(), w.rec)
	walk(t, w.nav, id)

	desc, ok := navigation.DefaultRegistry().Lookup(id)
	require.True(t, ok)
	entry := factory.CreateScreen(w.ecs, desc, items, w.rec, sound.NewToggle(w.track, false))
	w.screen = components.Screen.Get(entry)
	return w
}

// walk drives the machine from loading to id along legal edges.
func walk(t *testing.T, m *navigation.Machine, id navigation.ScreenID) {
	t.Helper()
	if id == navigation.Loading {
		return
	}
	_, err := m.RequestTransition(navigation.Start, navigation.TriggerEffect)
	require.NoError(t, err)
	if id == navigation.Start {
		return
	}
	_, err = m.RequestTransition(navigation.Levels, navigation.TriggerUser)
	require.NoError(t, err)
	if id != navigation.Levels {
		_, err = m.RequestTransition(id, navigation.TriggerUser)
		require.NoError(t, err)
	}
}

func (w *world) tick(seconds float64) {
	for i := 0; i < int(seconds/tickSeconds+0.5); i++ {
		UpdateScreen(w.ecs)
	}
}

func press(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
}

func TestNavigateMarksScreenLeaving(t *testing.T) {
	w := newWorld(t, navigation.Levels, 4)

	assert.True(t, Navigate(w.ecs, w.nav, navigation.About))
	assert.True(t, w.screen.Exit)
	assert.Equal(t, navigation.About, w.nav.Current())

	assert.False(t, Navigate(w.ecs, w.nav, navigation.Skills), "a leaving screen ignores input")
	assert.Equal(t, navigation.About, w.nav.Current())
}

func TestNavigateIllegalKeepsScreen(t *testing.T) {
	w := newWorld(t, navigation.Levels, 4)

	assert.False(t, Navigate(w.ecs, w.nav, navigation.Start))
	assert.False(t, w.screen.Exit)
	assert.Equal(t, navigation.Levels, w.nav.Current())
}

func TestPressStartFadesThenNavigates(t *testing.T) {
	w := newWorld(t, navigation.Start, 1)
	w.tick(1.5)
	require.InDelta(t, 1.0, w.screen.Root.Get(effects.Opacity), 1e-9)

	PressStart(w.ecs, w.nav)
	assert.Equal(t, 1, w.rec.Played(sound.CueStart))
	assert.True(t, w.track.IsPlaying(), "music starts with the player's first press")

	PressStart(w.ecs, w.nav)
	assert.Equal(t, 1, w.rec.Played(sound.CueStart), "second press is ignored while fading")

	w.tick(cfg.Timing.StartFadeSecs / 2)
	assert.Equal(t, navigation.Start, w.nav.Current())

	w.tick(cfg.Timing.StartFadeSecs/2 + 0.1)
	assert.Equal(t, navigation.Levels, w.nav.Current())
	assert.InDelta(t, 0.0, w.screen.Root.Get(effects.Opacity), 1e-9)
}

func TestMenuSelectionWraps(t *testing.T) {
	w := newWorld(t, navigation.Levels, 4)
	factory.CreateMenu(w.ecs, 4, LevelColumns)
	menu := GetOrCreateMenu(w.ecs)

	press(w.ecs, cfg.ActionMenuRight)
	assert.False(t, UpdateMenuSelection(w.ecs))
	assert.Equal(t, 1, menu.SelectedIndex)

	press(w.ecs, cfg.ActionMenuDown)
	UpdateMenuSelection(w.ecs)
	assert.Equal(t, 3, menu.SelectedIndex)

	press(w.ecs, cfg.ActionMenuRight)
	UpdateMenuSelection(w.ecs)
	assert.Equal(t, 0, menu.SelectedIndex)

	press(w.ecs, cfg.ActionMenuUp)
	UpdateMenuSelection(w.ecs)
	assert.Equal(t, 2, menu.SelectedIndex)

	press(w.ecs, cfg.ActionMenuSelect)
	assert.True(t, UpdateMenuSelection(w.ecs))
}

func TestHeldKeyDoesNotRepeat(t *testing.T) {
	w := newWorld(t, navigation.Levels, 4)
	factory.CreateMenu(w.ecs, 4, LevelColumns)

	press(w.ecs, cfg.ActionMenuSelect)
	input := getOrCreateInput(w.ecs)
	input.Previous = input.Current
	assert.False(t, UpdateMenuSelection(w.ecs))
}

func TestPlayProjectSelectsMachine(t *testing.T) {
	w := newWorld(t, navigation.Projects, 3)
	entry := archetypes.Projects.Spawn(w.ecs)

	PlayProject(w.ecs, "reddit")
	assert.Equal(t, "reddit", components.Projects.Get(entry).Selected)
	assert.Equal(t, 1, w.rec.Played(sound.CueCoin))

	w.screen.Cues.StopAll()
	assert.False(t, w.rec.Playing(sound.CueCoin))
}

func TestToggleMuteFlipsMusic(t *testing.T) {
	w := newWorld(t, navigation.Levels, 0)
	audio := GetOrCreateAudio(w.ecs)
	audio.Music.Start()
	require.True(t, w.track.IsPlaying())

	ToggleMute(w.ecs)
	assert.True(t, audio.Music.Muted())
	assert.False(t, w.track.IsPlaying())

	ToggleMute(w.ecs)
	assert.False(t, audio.Music.Muted())
	assert.True(t, w.track.IsPlaying())
}

func TestFlashExpires(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateFlash(e, 3, 1, 1, 1)
	for i := 0; i < 3; i++ {
		updateFlashEffects(e)
	}
	_, ok := components.Flash.First(e.World)
	assert.False(t, ok)
}

func TestNavLabel(t *testing.T) {
	assert.Equal(t, "< ABOUT", NavLabel(navigation.Skills, navigation.About))
	assert.Equal(t, "PROJECTS >", NavLabel(navigation.Skills, navigation.Projects))
	assert.Equal(t, "LEVEL SELECT", NavLabel(navigation.Contact, navigation.Levels))
}

func TestLevelGridIsCentered(t *testing.T) {
	x0, y0, w, _ := LevelCardRect(0)
	x1, y1, _, _ := LevelCardRect(1)
	x2, y2, _, _ := LevelCardRect(2)

	assert.Equal(t, y0, y1)
	assert.Equal(t, x0, x2)
	assert.Greater(t, y2, y0)
	assert.InDelta(t, float64(cfg.C.Width)/2, (x0+x1+w)/2, 1e-9)
}

func TestIdleCurves(t *testing.T) {
	assert.True(t, blink(0, 60))
	assert.False(t, blink(30, 60))
	assert.True(t, blink(5, 0))

	assert.InDelta(t, 0, wave(0, 120), 1e-9)
	assert.InDelta(t, 1, wave(30, 120), 1e-9)
	assert.InDelta(t, 0, wave(10, 0), 1e-9)
}
