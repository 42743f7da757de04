package loading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/navigation"
	"github.com/automoto/arcade-portfolio/sound"
	"github.com/automoto/arcade-portfolio/sound/soundtest"
)

const tick = 1.0 / 60

type fixture struct {
	fx   *effects.Service
	nav  *navigation.Machine
	rec  *soundtest.Recorder
	root *effects.Target
	gate *Gate
}

func newFixture() *fixture {
	f := &fixture{
		fx:   effects.NewService(),
		rec:  soundtest.NewRecorder(),
		root: effects.NewTarget("loading-root"),
	}
	f.nav = navigation.NewMachine(navigation.DefaultRegistry(), f.rec)
	f.gate = NewGate(f.fx, f.nav, f.rec, f.root, DefaultConfig())
	return f
}

func (f *fixture) run(seconds float64) {
	for i := 0; i < int(seconds/tick+0.5); i++ {
		f.fx.Update(tick)
	}
}

func TestInitialState(t *testing.T) {
	f := newFixture()
	assert.Equal(t, 0, f.gate.Progress())
	assert.False(t, f.gate.CoinInserted())
	assert.False(t, f.gate.Completed())

	f.run(10)
	assert.Equal(t, navigation.Loading, f.nav.Current(), "nothing happens without a coin")
}

func TestInsertCoinReachesStart(t *testing.T) {
	f := newFixture()
	require.True(t, f.gate.InsertCoin())
	assert.Equal(t, 1, f.rec.Played(sound.CueCoin))

	// progress + fade delay + fade
	f.run(3 + 0.5 + 1 + 0.1)

	assert.Equal(t, 100, f.gate.Progress())
	assert.True(t, f.gate.Completed())
	assert.Equal(t, navigation.Start, f.nav.Current())
	assert.Equal(t, 0.0, f.root.Get(effects.Opacity))
}

func TestProgressMonotonicAndFullBeforeTransition(t *testing.T) {
	f := newFixture()
	var samples []int
	fullBeforeStart := false
	f.nav.OnTransition(func(tr navigation.Transition) {
		fullBeforeStart = tr.To == navigation.Start && f.gate.Progress() == 100
	})

	f.gate.InsertCoin()
	for i := 0; i < 60*5; i++ {
		f.fx.Update(tick)
		samples = append(samples, f.gate.Progress())
	}

	for i := 1; i < len(samples); i++ {
		require.GreaterOrEqual(t, samples[i], samples[i-1])
	}
	for _, p := range samples {
		assert.Zero(t, p%5, "stepped progress moves in 5%% increments, got %d", p)
	}
	assert.Equal(t, 100, samples[len(samples)-1])
	assert.True(t, fullBeforeStart)
}

func TestNoTransitionBeforeFadeCompletes(t *testing.T) {
	f := newFixture()
	f.gate.InsertCoin()

	f.run(3.2)
	assert.Equal(t, 100, f.gate.Progress())
	assert.Equal(t, navigation.Loading, f.nav.Current())

	f.run(1)
	assert.Equal(t, navigation.Loading, f.nav.Current())

	f.run(0.5)
	assert.Equal(t, navigation.Start, f.nav.Current())
}

func TestSecondCoinIsNoop(t *testing.T) {
	f := newFixture()
	require.True(t, f.gate.InsertCoin())
	f.run(1)
	before := f.gate.Progress()
	active := f.fx.Active()

	assert.False(t, f.gate.InsertCoin())
	assert.Equal(t, before, f.gate.Progress())
	assert.Equal(t, active, f.fx.Active())
	assert.Equal(t, 1, f.rec.Played(sound.CueCoin))

	f.run(5)
	assert.False(t, f.gate.InsertCoin())
	assert.Equal(t, 1, f.rec.Played(sound.CueCoin))
}

func TestTransitionFiresOnce(t *testing.T) {
	f := newFixture()
	count := 0
	f.nav.OnTransition(func(navigation.Transition) { count++ })

	f.gate.InsertCoin()
	f.run(10)
	assert.Equal(t, 1, count)
}

func TestDetachedRootDoesNotStall(t *testing.T) {
	f := newFixture()
	f.gate.InsertCoin()
	f.root.Detach()
	f.gate.Bar().Detach()

	f.run(0.1)
	assert.True(t, f.gate.Completed())
	assert.Equal(t, 100, f.gate.Progress())
	assert.Equal(t, navigation.Start, f.nav.Current())
}
