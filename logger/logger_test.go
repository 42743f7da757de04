package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

func TestPackageLevels(t *testing.T) {
	m, err := NewManager(Config{
		Level:  "info",
		Levels: map[string]string{"navigation": "debug", "audio": "error"},
	})
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, m.GetLogger("navigation").GetLevel())
	assert.Equal(t, zerolog.ErrorLevel, m.GetLogger("audio").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, m.GetLogger("effects").GetLevel())
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "arcade.log")
	m, err := NewManager(Config{
		Level: "info",
		File:  FileConfig{Enabled: true, Path: path, MaxSizeMB: 1},
	})
	require.NoError(t, err)

	l := m.GetLogger("scenes")
	l.Info().Str("screen", "loading").Msg("entered")
	require.NoError(t, m.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"pkg":"scenes"`)
	assert.Contains(t, string(data), `"screen":"loading"`)
}

func TestGetLoggerBeforeInitialize(t *testing.T) {
	l := GetLogger("anything")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}
