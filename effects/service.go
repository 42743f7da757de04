package effects

import (
	"github.com/rs/zerolog"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automoto/arcade-portfolio/logger"
)

// Change is the start and end value of one property.
type Change struct {
	From, To float64
}

// Changes maps each animated property to its change.
type Changes map[Property]Change

// Config controls timing. Durations are in seconds.
type Config struct {
	Duration float64
	Delay    float64
	Stagger  float64 // offset between consecutive targets in Stagger
	Easing   ease.TweenFunc
}

// Spec is a reusable effect description.
type Spec struct {
	Changes Changes
	Config  Config
}

// Handle reports on a scheduled effect. It completes exactly once.
type Handle struct {
	pending    int
	done       bool
	canceled   bool
	onUpdate   []func(*Target)
	onComplete []func()
}

// OnUpdate registers fn to run after every step that changes a target.
func (h *Handle) OnUpdate(fn func(*Target)) *Handle {
	h.onUpdate = append(h.onUpdate, fn)
	return h
}

// OnComplete registers fn to run when the effect finishes. If it already
// finished, fn runs immediately.
func (h *Handle) OnComplete(fn func()) *Handle {
	if h.done {
		if !h.canceled {
			fn()
		}
		return h
	}
	h.onComplete = append(h.onComplete, fn)
	return h
}

// Done reports whether the effect finished or was canceled.
func (h *Handle) Done() bool {
	return h.done
}

// Cancel stops all future callbacks. Values already written stay as they are.
func (h *Handle) Cancel() {
	h.canceled = true
	h.done = true
	h.onUpdate = nil
	h.onComplete = nil
}

func (h *Handle) update(t *Target) {
	for _, fn := range h.onUpdate {
		if h.canceled {
			return
		}
		fn(t)
	}
}

func (h *Handle) finishOne() {
	if h.done {
		return
	}
	h.pending--
	if h.pending > 0 {
		return
	}
	h.done = true
	callbacks := h.onComplete
	h.onComplete = nil
	for _, fn := range callbacks {
		fn()
	}
}

type run struct {
	handle  *Handle
	target  *Target
	changes Changes
	tweens  map[Property]*gween.Tween
	delay   float64
	instant bool
}

// Service advances scheduled effects. It is driven by a single goroutine.
type Service struct {
	runs    []*run
	handles []*Handle
	elapsed float64
	log     zerolog.Logger
}

func NewService() *Service {
	return &Service{log: logger.GetLogger("effects")}
}

// Animate schedules changes on target. Start values are applied immediately.
func (s *Service) Animate(target *Target, changes Changes, cfg Config) *Handle {
	return s.Stagger([]*Target{target}, changes, cfg)
}

// Stagger schedules the same changes on every target, starting each one
// cfg.Stagger seconds after the previous in slice order. The handle completes
// when the last target finishes.
func (s *Service) Stagger(targets []*Target, changes Changes, cfg Config) *Handle {
	h := &Handle{pending: len(targets)}
	s.handles = append(s.handles, h)

	if len(targets) == 0 {
		h.pending = 1
		h.finishOne()
		return h
	}

	easing := cfg.Easing
	if easing == nil {
		easing = ease.Linear
	}

	for i, t := range targets {
		r := &run{
			handle:  h,
			target:  t,
			changes: changes,
			tweens:  make(map[Property]*gween.Tween, len(changes)),
			delay:   cfg.Delay + float64(i)*cfg.Stagger,
			instant: cfg.Duration <= 0,
		}
		for p, c := range changes {
			t.Set(p, c.From)
			r.tweens[p] = gween.New(float32(c.From), float32(c.To), float32(cfg.Duration), easing)
		}
		s.runs = append(s.runs, r)
	}
	return h
}

// All returns a handle that completes once every one of hs has completed.
func (s *Service) All(hs ...*Handle) *Handle {
	out := &Handle{pending: len(hs)}
	s.handles = append(s.handles, out)
	if len(hs) == 0 {
		out.pending = 1
		out.finishOne()
		return out
	}
	for _, h := range hs {
		h.OnComplete(out.finishOne)
	}
	return out
}

// Run schedules a Spec on targets.
func (s *Service) Run(spec Spec, targets ...*Target) *Handle {
	return s.Stagger(targets, spec.Changes, spec.Config)
}

// Update advances every effect by dt seconds.
func (s *Service) Update(dt float64) {
	s.elapsed += dt

	active := s.runs
	s.runs = nil

	var keep []*run
	for _, r := range active {
		if r.handle.canceled {
			continue
		}
		if !s.step(r, dt) {
			keep = append(keep, r)
		}
	}

	// effects scheduled from callbacks during this update start next update
	s.runs = append(keep, s.runs...)
	s.pruneHandles()
}

// step advances one run and reports whether it finished.
func (s *Service) step(r *run, dt float64) bool {
	if r.target.Detached() {
		s.log.Debug().Str("target", r.target.Name).Msg("target detached mid-effect, completing early")
		r.handle.finishOne()
		return true
	}

	if r.delay > 0 {
		r.delay -= dt
		if r.delay > 0 {
			return false
		}
		dt = -r.delay
		r.delay = 0
	}

	finished := true
	for p, tw := range r.tweens {
		if r.instant {
			r.target.Set(p, r.changes[p].To)
			continue
		}
		v, done := tw.Update(float32(dt))
		r.target.Set(p, float64(v))
		if done {
			// gween returns float32; pin the exact end value
			r.target.Set(p, r.changes[p].To)
		} else {
			finished = false
		}
	}

	r.handle.update(r.target)
	if r.handle.canceled {
		return true
	}
	if finished {
		r.handle.finishOne()
	}
	return finished
}

func (s *Service) pruneHandles() {
	live := s.handles[:0]
	for _, h := range s.handles {
		if !h.done {
			live = append(live, h)
		}
	}
	s.handles = live
}

// CancelAll cancels every pending effect.
func (s *Service) CancelAll() {
	for _, h := range s.handles {
		h.Cancel()
	}
	s.handles = nil
	s.runs = nil
}

// Active returns the number of targets still animating.
func (s *Service) Active() int {
	return len(s.runs)
}

// Elapsed returns the total time advanced so far.
func (s *Service) Elapsed() float64 {
	return s.elapsed
}
