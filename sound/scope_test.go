package sound_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/arcade-portfolio/sound"
	"github.com/automoto/arcade-portfolio/sound/soundtest"
)

func TestScopeStopsOnlyItsCues(t *testing.T) {
	rec := soundtest.NewRecorder()
	rec.Play(sound.CueBackground, sound.Options{Volume: 0.3, Loop: true})

	scope := sound.NewScope(rec)
	scope.Play(sound.CueSelect, sound.Options{Volume: 0.5})
	scope.Play(sound.CueType, sound.Options{Volume: 0.2})
	scope.Play(sound.CueType, sound.Options{Volume: 0.2})
	assert.Equal(t, []sound.CueID{sound.CueSelect, sound.CueType}, scope.Started())

	scope.StopAll()
	assert.False(t, rec.Playing(sound.CueSelect))
	assert.False(t, rec.Playing(sound.CueType))
	assert.True(t, rec.Playing(sound.CueBackground))
	assert.Empty(t, scope.Started())
}

func TestScopeStopIsIdempotent(t *testing.T) {
	rec := soundtest.NewRecorder()
	scope := sound.NewScope(rec)
	scope.Play(sound.CueCoin, sound.Options{})

	scope.Stop(sound.CueCoin)
	scope.Stop(sound.CueCoin)
	scope.StopAll()

	stops := 0
	for _, c := range rec.Calls {
		if c.Op == "stop" {
			stops++
		}
	}
	assert.Equal(t, 1, stops)
}

func TestScopeNilService(t *testing.T) {
	scope := sound.NewScope(nil)
	assert.NotPanics(t, func() {
		scope.Play(sound.CueCoin, sound.Options{})
		scope.Pause(sound.CueCoin)
		scope.StopAll()
	})
	assert.Empty(t, scope.Started())
}
