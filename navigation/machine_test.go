package navigation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/sound"
	"github.com/automoto/arcade-portfolio/sound/soundtest"
)

// legal mirrors the arcade's transition table.
var legal = map[ScreenID]map[ScreenID]Trigger{
	Loading:  {Start: TriggerEffect},
	Start:    {Levels: TriggerUser},
	Levels:   {About: TriggerUser, Skills: TriggerUser, Projects: TriggerUser, Contact: TriggerUser},
	About:    {Levels: TriggerUser, Skills: TriggerUser},
	Skills:   {About: TriggerUser, Projects: TriggerUser},
	Projects: {Skills: TriggerUser, Contact: TriggerUser},
	Contact:  {Projects: TriggerUser, Levels: TriggerUser},
}

// machineAt returns a machine forced to screen from.
func machineAt(from ScreenID, cues sound.Service) *Machine {
	m := NewMachine(DefaultRegistry(), cues)
	m.current = from
	return m
}

func TestInitialScreenIsLoading(t *testing.T) {
	m := NewMachine(DefaultRegistry(), nil)
	assert.Equal(t, Loading, m.Current())
	assert.Equal(t, "LOADING GAME DATA...", m.Descriptor().Title)
}

func TestEveryPairFollowsTable(t *testing.T) {
	for _, from := range AllScreens() {
		for _, to := range AllScreens() {
			for _, trigger := range []Trigger{TriggerUser, TriggerEffect} {
				m := machineAt(from, nil)
				want, ok := legal[from][to]
				allowed := ok && want == trigger

				got, err := m.RequestTransition(to, trigger)
				if allowed {
					require.NoError(t, err, "%s -> %s (%s)", from, to, trigger)
					assert.Equal(t, to, got)
					assert.Equal(t, to, m.Current())
					continue
				}

				require.Error(t, err, "%s -> %s (%s)", from, to, trigger)
				assert.True(t, errors.Is(err, ErrIllegalTransition))
				assert.Equal(t, from, got)
				assert.Equal(t, from, m.Current())

				var ite *IllegalTransitionError
				require.True(t, errors.As(err, &ite))
				assert.Equal(t, from, ite.From)
				assert.Equal(t, to, ite.To)
				assert.Equal(t, trigger, ite.Trigger)
			}
		}
	}
}

func TestUnknownScreenRejected(t *testing.T) {
	m := machineAt(Levels, nil)
	_, err := m.RequestTransition(ScreenID(42), TriggerUser)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, Levels, m.Current())
}

func TestLoadingToStartRequiresEffectCompletion(t *testing.T) {
	m := NewMachine(DefaultRegistry(), nil)
	_, err := m.RequestTransition(Start, TriggerUser)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	got, err := m.RequestTransition(Start, TriggerEffect)
	require.NoError(t, err)
	assert.Equal(t, Start, got)
}

func TestStartToLevelsToAbout(t *testing.T) {
	m := machineAt(Start, nil)

	_, err := m.RequestTransition(Levels, TriggerUser)
	require.NoError(t, err)
	assert.Equal(t, Levels, m.Current())

	_, err = m.RequestTransition(About, TriggerUser)
	require.NoError(t, err)
	assert.Equal(t, About, m.Current())
}

func TestAboutCannotJumpToContact(t *testing.T) {
	m := machineAt(About, nil)
	_, err := m.RequestTransition(Contact, TriggerUser)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, About, m.Current())
}

func TestSerializedRequestsUseNewCurrent(t *testing.T) {
	m := machineAt(Levels, nil)

	_, err := m.RequestTransition(About, TriggerUser)
	require.NoError(t, err)
	// evaluated against about, which has no edge to contact
	_, err = m.RequestTransition(Contact, TriggerUser)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, About, m.Current())
}

func TestEntryCuePlayedOnSuccessOnly(t *testing.T) {
	rec := soundtest.NewRecorder()
	m := machineAt(Levels, rec)

	_, err := m.RequestTransition(Skills, TriggerUser)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Played(sound.CueSelect))

	_, _ = m.RequestTransition(Contact, TriggerUser)
	assert.Equal(t, 1, rec.Played(sound.CueSelect))
}

func TestListenersNotified(t *testing.T) {
	m := machineAt(Start, nil)
	var seen []Transition
	m.OnTransition(func(tr Transition) { seen = append(seen, tr) })

	_, _ = m.RequestTransition(Levels, TriggerUser)
	_, _ = m.RequestTransition(Start, TriggerUser)

	require.Len(t, seen, 1)
	assert.Equal(t, Transition{From: Start, To: Levels, Trigger: TriggerUser}, seen[0])
}

func TestParseScreenID(t *testing.T) {
	for _, id := range AllScreens() {
		got, err := ParseScreenID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
	_, err := ParseScreenID("credits")
	assert.Error(t, err)
	assert.False(t, ScreenID(-1).Valid())
	assert.Equal(t, "unknown", ScreenID(99).String())
}

func TestRegistryCoversEveryScreen(t *testing.T) {
	reg := DefaultRegistry()
	for _, id := range AllScreens() {
		d, ok := reg.Lookup(id)
		require.True(t, ok, id.String())
		assert.Equal(t, id, d.ID)
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.Next())
	}
}

func TestDescriptorEnterRunsRootAndChildren(t *testing.T) {
	fx := effects.NewService()
	root := effects.NewTarget("root")
	cards := effects.Targets("card", 4)
	d := DefaultRegistry()[Levels]

	done := false
	d.Enter(fx, root, cards).OnComplete(func() { done = true })

	assert.Equal(t, 0.0, root.Get(effects.Opacity))
	assert.Equal(t, 50.0, cards[3].Get(effects.OffsetY))

	for i := 0; i < 60*3; i++ {
		fx.Update(1.0 / 60)
	}
	assert.True(t, done)
	assert.Equal(t, 1.0, root.Get(effects.Opacity))
	for _, c := range cards {
		assert.Equal(t, 0.0, c.Get(effects.OffsetY))
		assert.Equal(t, 1.0, c.Get(effects.Opacity))
	}
}
