// Package soundtest provides fakes for the sound contracts.
package soundtest

import "github.com/automoto/arcade-portfolio/sound"

// Call is one recorded service call.
type Call struct {
	Op   string // "play", "pause" or "stop"
	Cue  sound.CueID
	Opts sound.Options
}

// Recorder is a sound.Service that records every call.
type Recorder struct {
	Calls   []Call
	playing map[sound.CueID]bool
}

func NewRecorder() *Recorder {
	return &Recorder{playing: make(map[sound.CueID]bool)}
}

func (r *Recorder) Play(cue sound.CueID, opts sound.Options) {
	r.Calls = append(r.Calls, Call{Op: "play", Cue: cue, Opts: opts})
	r.playing[cue] = true
}

func (r *Recorder) Pause(cue sound.CueID) {
	r.Calls = append(r.Calls, Call{Op: "pause", Cue: cue})
	r.playing[cue] = false
}

func (r *Recorder) Stop(cue sound.CueID) {
	r.Calls = append(r.Calls, Call{Op: "stop", Cue: cue})
	r.playing[cue] = false
}

// Played returns how many times cue was played.
func (r *Recorder) Played(cue sound.CueID) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == "play" && c.Cue == cue {
			n++
		}
	}
	return n
}

// Playing reports whether cue was played and not stopped or paused since.
func (r *Recorder) Playing(cue sound.CueID) bool {
	return r.playing[cue]
}

// Track is a fake music track that tracks its playhead.
type Track struct {
	playing  bool
	Plays    int
	Pauses   int
	Position float64
}

func (t *Track) Play() {
	t.playing = true
	t.Plays++
}

func (t *Track) Pause() {
	t.playing = false
	t.Pauses++
}

func (t *Track) IsPlaying() bool {
	return t.playing
}

// Advance moves the playhead while playing.
func (t *Track) Advance(seconds float64) {
	if t.playing {
		t.Position += seconds
	}
}
