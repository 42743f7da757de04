package navigation

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/automoto/arcade-portfolio/logger"
	"github.com/automoto/arcade-portfolio/sound"
)

// ErrIllegalTransition is matched by every rejected transition request.
var ErrIllegalTransition = errors.New("illegal transition")

// IllegalTransitionError describes a rejected request.
type IllegalTransitionError struct {
	From    ScreenID
	To      ScreenID
	Trigger Trigger
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition %s -> %s (%s)", e.From, e.To, e.Trigger)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

// Machine holds the current screen. All calls must come from the game loop
// goroutine.
type Machine struct {
	registry  Registry
	cues      sound.Service
	current   ScreenID
	listeners []func(Transition)
	log       zerolog.Logger
}

// NewMachine creates a machine at the loading screen. cues may be nil.
func NewMachine(registry Registry, cues sound.Service) *Machine {
	return &Machine{
		registry: registry,
		cues:     cues,
		current:  Loading,
		log:      logger.GetLogger("navigation"),
	}
}

// Current returns the screen being presented.
func (m *Machine) Current() ScreenID {
	return m.current
}

// Descriptor returns the current screen's descriptor.
func (m *Machine) Descriptor() Descriptor {
	d, _ := m.registry.Lookup(m.current)
	return d
}

// Can reports whether a request would be accepted right now.
func (m *Machine) Can(to ScreenID, trigger Trigger) bool {
	if !to.Valid() {
		return false
	}
	d, ok := m.registry.Lookup(m.current)
	if !ok {
		return false
	}
	if _, ok := m.registry.Lookup(to); !ok {
		return false
	}
	return d.Allows(to, trigger)
}

// OnTransition registers fn to run after every accepted transition.
func (m *Machine) OnTransition(fn func(Transition)) {
	m.listeners = append(m.listeners, fn)
}

// RequestTransition moves to `to` if the current screen declares that edge
// for trigger. On success it plays the target's entry cue and returns the new
// screen. Otherwise the state is untouched and the error matches
// ErrIllegalTransition.
func (m *Machine) RequestTransition(to ScreenID, trigger Trigger) (ScreenID, error) {
	if !m.Can(to, trigger) {
		err := &IllegalTransitionError{From: m.current, To: to, Trigger: trigger}
		m.log.Debug().Err(err).Msg("transition rejected")
		return m.current, err
	}

	t := Transition{From: m.current, To: to, Trigger: trigger}
	m.current = to
	m.log.Info().
		Str("from", t.From.String()).
		Str("to", t.To.String()).
		Str("trigger", trigger.String()).
		Msg("screen changed")

	if d, ok := m.registry.Lookup(to); ok {
		sound.Cues.Play(m.cues, d.EntryCue)
	}
	for _, fn := range m.listeners {
		fn(t)
	}
	return m.current, nil
}
