package sound_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/arcade-portfolio/sound"
	"github.com/automoto/arcade-portfolio/sound/soundtest"
)

func TestToggleStartsUnmuted(t *testing.T) {
	toggle := sound.NewToggle(&soundtest.Track{}, false)
	assert.False(t, toggle.Muted())
	assert.True(t, toggle.ToggleMute())
}

func TestToggleMuteTwiceResumesPlayingMusic(t *testing.T) {
	track := &soundtest.Track{}
	toggle := sound.NewToggle(track, false)

	toggle.Start()
	track.Advance(2)
	assert.True(t, track.IsPlaying())

	assert.True(t, toggle.ToggleMute())
	assert.False(t, track.IsPlaying())
	track.Advance(5)

	assert.False(t, toggle.ToggleMute())
	assert.True(t, track.IsPlaying())
	assert.Equal(t, 2, track.Plays, "resume must reuse the same track, not restart it")
	assert.InDelta(t, 2.0, track.Position, 1e-9, "paused time must not advance the playhead")
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	for _, initial := range []bool{false, true} {
		toggle := sound.NewToggle(&soundtest.Track{}, initial)
		toggle.ToggleMute()
		toggle.ToggleMute()
		assert.Equal(t, initial, toggle.Muted())
	}
}

func TestToggleUnmuteResumesIdleTrack(t *testing.T) {
	track := &soundtest.Track{}
	toggle := sound.NewToggle(track, true)

	assert.False(t, toggle.ToggleMute())
	assert.True(t, track.IsPlaying())
	assert.Equal(t, 1, track.Plays)

	toggle = sound.NewToggle(&soundtest.Track{}, false)
	toggle.ToggleMute()
	toggle.ToggleMute()
	assert.False(t, toggle.Muted())
}

func TestToggleMuteThenUnmuteFreshTrackPlays(t *testing.T) {
	track := &soundtest.Track{}
	toggle := sound.NewToggle(track, false)

	toggle.ToggleMute()
	assert.False(t, track.IsPlaying())
	toggle.ToggleMute()

	assert.True(t, track.IsPlaying())
	assert.Equal(t, 1, track.Plays)
}

func TestToggleStartWhileMutedDefersMusic(t *testing.T) {
	track := &soundtest.Track{}
	toggle := sound.NewToggle(track, true)

	toggle.Start()
	assert.False(t, track.IsPlaying())

	toggle.ToggleMute()
	assert.True(t, track.IsPlaying())
}

func TestToggleWithoutTrack(t *testing.T) {
	toggle := sound.NewToggle(nil, false)
	assert.NotPanics(t, func() {
		toggle.Start()
		toggle.ToggleMute()
		toggle.ToggleMute()
	})
}
