package sound_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/arcade-portfolio/sound"
	"github.com/automoto/arcade-portfolio/sound/soundtest"
)

func TestCatalogOptions(t *testing.T) {
	tests := []struct {
		cue    sound.CueID
		volume float64
		loop   bool
	}{
		{sound.CueStartup, 0.5, false},
		{sound.CueType, 0.2, false},
		{sound.CueBackground, 0.3, true},
		{sound.CueID("missing"), 0.5, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.cue), func(t *testing.T) {
			opts := sound.Cues.Options(tt.cue)
			assert.InDelta(t, tt.volume, opts.Volume, 1e-9)
			assert.Equal(t, tt.loop, opts.Loop)
		})
	}
}

func TestCatalogPlay(t *testing.T) {
	rec := soundtest.NewRecorder()

	sound.Cues.Play(rec, sound.CueCoin)
	sound.Cues.Play(rec, sound.CueNone)
	sound.Cues.Play(nil, sound.CueCoin)

	require.Len(t, rec.Calls, 1)
	assert.Equal(t, sound.CueCoin, rec.Calls[0].Cue)
	assert.True(t, rec.Playing(sound.CueCoin))
}

func TestEveryCueHasFallbackTune(t *testing.T) {
	for id, cue := range sound.Cues {
		assert.NotEmpty(t, cue.File, id)
		assert.Greater(t, cue.Tune.Duration(), 0.0, id)
	}
}

func TestMelodyRender(t *testing.T) {
	const rate = 8000
	m := sound.Melody{{Freq: sound.A5, Duration: 0.5}, {Freq: sound.Rest, Duration: 0.25}}

	pcm := m.Render(rate)

	require.Len(t, pcm, (4000+2000)*4)
	// the rest segment is silent
	for _, b := range pcm[4000*4:] {
		assert.Zero(t, b)
	}
	// left and right channels carry the same sample
	assert.Equal(t, pcm[400:402], pcm[402:404])
}

func TestMelodyRenderEmpty(t *testing.T) {
	assert.Empty(t, sound.Melody{}.Render(44100))
	assert.Empty(t, sound.Melody{{Freq: sound.C4, Duration: 0}}.Render(44100))
}
