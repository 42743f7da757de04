package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate  int
	BasePath    string   // directory holding the cue files
	MusicVolume float64  // multiplier applied to the background track
	SFXVolume   float64  // multiplier applied to every other cue
	Muted       bool     // initial mute state
	Preload     []string // cue ids decoded at startup
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:  44100,
		BasePath:    "assets/sounds",
		MusicVolume: 1.0,
		SFXVolume:   1.0,
		Muted:       false,
		Preload:     []string{"startup", "coin", "select"},
	}
}
