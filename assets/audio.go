package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/automoto/arcade-portfolio/sound"
)

// AudioLoader handles loading and caching of audio assets. Every error it
// returns wraps sound.ErrAssetUnavailable.
type AudioLoader struct {
	fsys       fs.FS
	sampleRate int
	sfxCache   map[string][]byte // Cache decoded audio bytes for SFX
}

// NewAudioLoader creates a loader reading cue files from fsys.
func NewAudioLoader(fsys fs.FS, sampleRate int) *AudioLoader {
	return &AudioLoader{
		fsys:       fsys,
		sampleRate: sampleRate,
		sfxCache:   make(map[string][]byte),
	}
}

// PreloadSFX decodes a sound effect and caches it.
func (l *AudioLoader) PreloadSFX(name string) error {
	_, err := l.LoadSFX(name)
	return err
}

// LoadSFX returns the decoded PCM for a cue file, decoding it on first use.
func (l *AudioLoader) LoadSFX(name string) ([]byte, error) {
	if cached, ok := l.sfxCache[name]; ok {
		return cached, nil
	}

	stream, _, err := l.open(name)
	if err != nil {
		return nil, err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w: %w", name, sound.ErrAssetUnavailable, err)
	}

	l.sfxCache[name] = decoded
	return decoded, nil
}

// LoadMusic returns a decoded stream and its length in bytes, for looping.
// Music is not cached.
func (l *AudioLoader) LoadMusic(name string) (io.ReadSeeker, int64, error) {
	return l.open(name)
}

// Cached reports whether name has been decoded.
func (l *AudioLoader) Cached(name string) bool {
	_, ok := l.sfxCache[name]
	return ok
}

func (l *AudioLoader) open(name string) (io.ReadSeeker, int64, error) {
	ext := strings.ToLower(path.Ext(name))
	if ext != ".ogg" && ext != ".wav" {
		return nil, 0, fmt.Errorf("unsupported audio format %q: %w", ext, sound.ErrAssetUnavailable)
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read audio file %s: %w: %w", name, sound.ErrAssetUnavailable, err)
	}

	switch ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode ogg %s: %w: %w", name, sound.ErrAssetUnavailable, err)
		}
		return stream, stream.Length(), nil
	default:
		stream, err := wav.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode wav %s: %w: %w", name, sound.ErrAssetUnavailable, err)
		}
		return stream, stream.Length(), nil
	}
}
