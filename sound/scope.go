package sound

// Scope forwards to a Service and remembers which cues it started, so a
// screen can stop everything it played when it is torn down.
type Scope struct {
	svc     Service
	started map[CueID]bool
	order   []CueID
}

// NewScope wraps svc. svc may be nil, in which case every call is a no-op.
func NewScope(svc Service) *Scope {
	return &Scope{svc: svc, started: make(map[CueID]bool)}
}

func (s *Scope) Play(cue CueID, opts Options) {
	if s.svc == nil || cue == CueNone {
		return
	}
	if !s.started[cue] {
		s.started[cue] = true
		s.order = append(s.order, cue)
	}
	s.svc.Play(cue, opts)
}

func (s *Scope) Pause(cue CueID) {
	if s.svc != nil {
		s.svc.Pause(cue)
	}
}

func (s *Scope) Stop(cue CueID) {
	if s.svc == nil || !s.started[cue] {
		return
	}
	delete(s.started, cue)
	s.svc.Stop(cue)
}

// StopAll stops every cue started through the scope, in start order.
// Calling it again is a no-op.
func (s *Scope) StopAll() {
	for _, cue := range s.order {
		s.Stop(cue)
	}
	s.order = s.order[:0]
}

// Started returns the cues started through the scope and not yet stopped.
func (s *Scope) Started() []CueID {
	out := make([]CueID, 0, len(s.started))
	for _, cue := range s.order {
		if s.started[cue] {
			out = append(out, cue)
		}
	}
	return out
}
