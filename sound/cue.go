// Package sound defines the cue contract shared by screens and the audio
// backend: stable cue identifiers, their default playback options, the
// background music mute toggle and a small chiptune synthesizer used when a
// cue's asset is missing.
package sound

import "errors"

// CueID identifies a preloaded short audio clip (or the music track).
type CueID string

const (
	CueNone       CueID = ""
	CueStartup    CueID = "startup"
	CueCoin       CueID = "coin"
	CueStart      CueID = "start"
	CueSelect     CueID = "select"
	CuePowerup    CueID = "powerup"
	CueType       CueID = "type"
	CueSuccess    CueID = "success"
	CueBackground CueID = "background"
)

// ErrAssetUnavailable is wrapped by loaders when a cue's file cannot be read
// or decoded.
var ErrAssetUnavailable = errors.New("audio asset unavailable")

// Options controls a single playback.
type Options struct {
	Volume float64 // 0.0 - 1.0
	Loop   bool
}

// Service plays, pauses and stops cues. Implementations never fail loudly:
// a missing asset is logged and skipped. Stop on a cue that is not playing is
// a no-op.
type Service interface {
	Play(cue CueID, opts Options)
	Pause(cue CueID)
	Stop(cue CueID)
}

// Cue is the static description of a cue.
type Cue struct {
	File   string // relative to the configured audio base path
	Volume float64
	Loop   bool
	Tune   Melody // synthesized fallback
}

// Catalog maps cue ids to their descriptions.
type Catalog map[CueID]Cue

// Options returns the default playback options for a cue. Unknown cues play
// at half volume without looping.
func (c Catalog) Options(id CueID) Options {
	cue, ok := c[id]
	if !ok {
		return Options{Volume: 0.5}
	}
	return Options{Volume: cue.Volume, Loop: cue.Loop}
}

// Play starts a cue with its catalog defaults.
func (c Catalog) Play(svc Service, id CueID) {
	if svc == nil || id == CueNone {
		return
	}
	svc.Play(id, c.Options(id))
}

// Cues is the catalog used by the application.
var Cues = Catalog{
	CueStartup: {
		File:   "startup.ogg",
		Volume: 0.5,
		Tune:   Melody{{C5, 0.08}, {E5, 0.08}, {G5, 0.08}, {C6, 0.24}},
	},
	CueCoin: {
		File:   "coin.wav",
		Volume: 0.5,
		Tune:   Melody{{B5, 0.06}, {E6, 0.3}},
	},
	CueStart: {
		File:   "start.wav",
		Volume: 0.5,
		Tune:   Melody{{G4, 0.1}, {C5, 0.1}, {E5, 0.1}, {G5, 0.3}},
	},
	CueSelect: {
		File:   "select.wav",
		Volume: 0.5,
		Tune:   Melody{{A5, 0.05}, {E6, 0.08}},
	},
	CuePowerup: {
		File:   "powerup.wav",
		Volume: 0.5,
		Tune:   Melody{{C5, 0.05}, {E5, 0.05}, {G5, 0.05}, {C6, 0.05}, {E6, 0.05}, {G6, 0.15}},
	},
	CueType: {
		File:   "type.wav",
		Volume: 0.2,
		Tune:   Melody{{A6, 0.02}},
	},
	CueSuccess: {
		File:   "success.wav",
		Volume: 0.5,
		Tune:   Melody{{C5, 0.12}, {C5, 0.06}, {G5, 0.12}, {C6, 0.4}},
	},
	CueBackground: {
		File:   "background.ogg",
		Volume: 0.3,
		Loop:   true,
		Tune: Melody{
			{C4, 0.25}, {E4, 0.25}, {G4, 0.25}, {E4, 0.25},
			{A3, 0.25}, {C4, 0.25}, {E4, 0.25}, {C4, 0.25},
			{F3, 0.25}, {A3, 0.25}, {C4, 0.25}, {A3, 0.25},
			{G3, 0.25}, {B3, 0.25}, {D4, 0.25}, {G4, 0.25},
		},
	},
}
