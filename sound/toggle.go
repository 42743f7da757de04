package sound

// Track is the background music channel the toggle drives.
type Track interface {
	Play()
	Pause()
	IsPlaying() bool
}

// Toggle is the process-wide mute switch for background music. It is
// independent of navigation and safe to flip from any screen.
type Toggle struct {
	track Track
	muted bool
}

// NewToggle creates a toggle over track with the given initial mute state.
func NewToggle(track Track, muted bool) *Toggle {
	return &Toggle{track: track, muted: muted}
}

// Muted reports whether background music is suppressed.
func (t *Toggle) Muted() bool {
	return t.muted
}

// Start begins background music unless muted.
func (t *Toggle) Start() {
	if t.muted || t.track == nil || t.track.IsPlaying() {
		return
	}
	t.track.Play()
}

// ToggleMute flips the mute flag and returns the new value. Muting pauses a
// playing track; unmuting resumes the track from where it paused.
func (t *Toggle) ToggleMute() bool {
	t.muted = !t.muted
	if t.track == nil {
		return t.muted
	}

	if t.muted {
		if t.track.IsPlaying() {
			t.track.Pause()
		}
		return t.muted
	}

	if !t.track.IsPlaying() {
		t.track.Play()
	}
	return t.muted
}
