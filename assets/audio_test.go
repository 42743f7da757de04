package assets

import (
	"bytes"
	"encoding/binary"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/arcade-portfolio/sound"
)

// wavFile wraps 16-bit stereo PCM in a RIFF header.
func wavFile(sampleRate int, pcm []byte) []byte {
	var b bytes.Buffer
	le := binary.LittleEndian
	b.WriteString("RIFF")
	_ = binary.Write(&b, le, uint32(36+len(pcm)))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	_ = binary.Write(&b, le, uint32(16))
	_ = binary.Write(&b, le, uint16(1)) // PCM
	_ = binary.Write(&b, le, uint16(2))
	_ = binary.Write(&b, le, uint32(sampleRate))
	_ = binary.Write(&b, le, uint32(sampleRate*4))
	_ = binary.Write(&b, le, uint16(4))
	_ = binary.Write(&b, le, uint16(16))
	b.WriteString("data")
	_ = binary.Write(&b, le, uint32(len(pcm)))
	b.Write(pcm)
	return b.Bytes()
}

func TestLoadSFXDecodesAndCaches(t *testing.T) {
	pcm := sound.Melody{{Freq: sound.A5, Duration: 0.05}}.Render(44100)
	fsys := fstest.MapFS{"select.wav": {Data: wavFile(44100, pcm)}}
	l := NewAudioLoader(fsys, 44100)

	got, err := l.LoadSFX("select.wav")
	require.NoError(t, err)
	assert.Equal(t, len(pcm), len(got))
	assert.True(t, l.Cached("select.wav"))

	delete(fsys, "select.wav")
	again, err := l.LoadSFX("select.wav")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestMissingAssetIsUnavailable(t *testing.T) {
	l := NewAudioLoader(fstest.MapFS{}, 44100)

	err := l.PreloadSFX("coin.wav")
	assert.ErrorIs(t, err, sound.ErrAssetUnavailable)
	assert.False(t, l.Cached("coin.wav"))

	_, _, err = l.LoadMusic("background.ogg")
	assert.ErrorIs(t, err, sound.ErrAssetUnavailable)
}

func TestUnsupportedFormat(t *testing.T) {
	l := NewAudioLoader(fstest.MapFS{"startup.mp3": {Data: []byte("ID3")}}, 44100)
	_, err := l.LoadSFX("startup.mp3")
	assert.ErrorIs(t, err, sound.ErrAssetUnavailable)
	assert.Contains(t, err.Error(), "unsupported audio format")
}

func TestCorruptWav(t *testing.T) {
	l := NewAudioLoader(fstest.MapFS{"type.wav": {Data: []byte("garbage")}}, 44100)
	_, err := l.LoadSFX("type.wav")
	assert.ErrorIs(t, err, sound.ErrAssetUnavailable)
}
