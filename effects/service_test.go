package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

const frame = 1.0 / 60

func advance(s *Service, seconds float64) {
	for t := 0.0; t < seconds; t += frame {
		s.Update(frame)
	}
}

func TestAnimateAppliesStartValueImmediately(t *testing.T) {
	s := NewService()
	target := NewTarget("title")

	s.Animate(target, Changes{Opacity: {From: 0, To: 1}, OffsetY: {From: 50, To: 0}}, Config{Duration: 1})

	assert.Equal(t, 0.0, target.Get(Opacity))
	assert.Equal(t, 50.0, target.Get(OffsetY))
}

func TestAnimateReachesEndValueAndCompletesOnce(t *testing.T) {
	s := NewService()
	target := NewTarget("root")
	completed := 0

	h := s.Animate(target, Changes{Opacity: {From: 0, To: 1}}, Config{Duration: 1, Easing: ease.OutQuart})
	h.OnComplete(func() { completed++ })

	advance(s, 0.5)
	assert.Greater(t, target.Get(Opacity), 0.0)
	assert.Less(t, target.Get(Opacity), 1.0)
	assert.False(t, h.Done())

	advance(s, 1)
	assert.Equal(t, 1.0, target.Get(Opacity))
	assert.True(t, h.Done())
	assert.Equal(t, 1, completed)

	advance(s, 1)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 0, s.Active())
}

func TestOnCompleteAfterDoneRunsImmediately(t *testing.T) {
	s := NewService()
	h := s.Animate(NewTarget("x"), Changes{Scale: {From: 0, To: 1}}, Config{Duration: 0.1})
	advance(s, 0.2)
	require.True(t, h.Done())

	called := false
	h.OnComplete(func() { called = true })
	assert.True(t, called)
}

func TestZeroDurationSetsEndValueOnFirstUpdate(t *testing.T) {
	s := NewService()
	target := NewTarget("bar")
	h := s.Animate(target, Changes{Width: {From: 0, To: 1}}, Config{})

	s.Update(frame)
	assert.Equal(t, 1.0, target.Get(Width))
	assert.True(t, h.Done())
}

func TestDelayHoldsStartValue(t *testing.T) {
	s := NewService()
	target := NewTarget("fade")
	s.Animate(target, Changes{Opacity: {From: 1, To: 0}}, Config{Duration: 1, Delay: 0.5})

	advance(s, 0.4)
	assert.Equal(t, 1.0, target.Get(Opacity))

	advance(s, 0.3)
	assert.Less(t, target.Get(Opacity), 1.0)
}

func TestStaggerStartsTargetsInOrder(t *testing.T) {
	s := NewService()
	items := Targets("card", 4)
	completed := 0

	h := s.Stagger(items, Changes{OffsetY: {From: 50, To: 0}, Opacity: {From: 0, To: 1}},
		Config{Duration: 0.5, Stagger: 0.2})
	h.OnComplete(func() { completed++ })

	for _, it := range items {
		assert.Equal(t, 0.0, it.Get(Opacity))
	}

	advance(s, 0.3)
	assert.Greater(t, items[0].Get(Opacity), 0.0)
	assert.Greater(t, items[1].Get(Opacity), 0.0)
	assert.Equal(t, 0.0, items[2].Get(Opacity))
	assert.Equal(t, 0.0, items[3].Get(Opacity))
	assert.GreaterOrEqual(t, items[0].Get(Opacity), items[1].Get(Opacity))

	advance(s, 1.2)
	assert.Equal(t, 1, completed)
	for _, it := range items {
		assert.Equal(t, 1.0, it.Get(Opacity))
		assert.Equal(t, 0.0, it.Get(OffsetY))
	}
}

func TestStaggerWithNoTargetsCompletesImmediately(t *testing.T) {
	s := NewService()
	h := s.Stagger(nil, Changes{Opacity: {From: 0, To: 1}}, Config{Duration: 1})
	assert.True(t, h.Done())

	called := false
	h.OnComplete(func() { called = true })
	assert.True(t, called)
}

func TestDetachedTargetCompletesEarly(t *testing.T) {
	s := NewService()
	target := NewTarget("gone")
	completed := false
	s.Animate(target, Changes{Opacity: {From: 0, To: 1}}, Config{Duration: 5}).
		OnComplete(func() { completed = true })

	s.Update(frame)
	target.Detach()
	s.Update(frame)

	assert.True(t, completed)
	assert.Equal(t, 0, s.Active())
}

func TestCancelAllSuppressesCallbacks(t *testing.T) {
	s := NewService()
	target := NewTarget("t")
	updates, completes := 0, 0
	s.Animate(target, Changes{Opacity: {From: 0, To: 1}}, Config{Duration: 1}).
		OnUpdate(func(*Target) { updates++ }).
		OnComplete(func() { completes++ })

	s.Update(frame)
	require.Equal(t, 1, updates)

	s.CancelAll()
	advance(s, 2)
	assert.Equal(t, 1, updates)
	assert.Equal(t, 0, completes)
	assert.Equal(t, 0, s.Active())
}

func TestEffectScheduledFromCallbackRunsAfterward(t *testing.T) {
	s := NewService()
	first := NewTarget("first")
	second := NewTarget("second")

	s.Animate(first, Changes{Opacity: {From: 0, To: 1}}, Config{Duration: 0.1}).
		OnComplete(func() {
			s.Animate(second, Changes{Opacity: {From: 1, To: 0}}, Config{Duration: 0.1})
		})

	advance(s, 0.15)
	assert.Equal(t, 1.0, first.Get(Opacity))

	advance(s, 0.2)
	assert.Equal(t, 0.0, second.Get(Opacity))
}

func TestSteps(t *testing.T) {
	fn := Steps(20)
	assert.Equal(t, float32(0), fn(0, 0, 100, 3))
	assert.Equal(t, float32(0), fn(0.1, 0, 100, 3))
	assert.Equal(t, float32(5), fn(0.2, 0, 100, 3))
	assert.Equal(t, float32(50), fn(1.5, 0, 100, 3))
	assert.Equal(t, float32(100), fn(3, 0, 100, 3))

	prev := float32(-1)
	for i := 0; i <= 180; i++ {
		v := fn(float32(i)/60, 0, 100, 3)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestNamedFallsBackToLinear(t *testing.T) {
	assert.Equal(t, float32(0.5), Named("no-such-ease")(0.5, 0, 1, 1))
	assert.Equal(t, float32(0.5), Named("linear")(0.5, 0, 1, 1))
	assert.NotNil(t, Named("power3.out"))
}

func TestTargetDefaults(t *testing.T) {
	target := NewTarget("d")
	assert.Equal(t, 1.0, target.Get(Opacity))
	assert.Equal(t, 1.0, target.Get(Scale))
	assert.Equal(t, 0.0, target.Get(OffsetY))
	assert.Equal(t, "opacity", Opacity.String())
	assert.Equal(t, "card-2", Targets("card", 3)[2].Name)
}
