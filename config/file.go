package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/automoto/arcade-portfolio/logger"
)

// Settings is the user-overridable configuration read from arcade.yaml and
// ARCADE_* environment variables.
type Settings struct {
	Window WindowSettings `mapstructure:"window"`
	Audio  AudioSettings  `mapstructure:"audio"`
	Timing TimingSettings `mapstructure:"timing"`
	CRT    CRTSettings    `mapstructure:"crt"`
	Debug  DebugSettings  `mapstructure:"debug"`
	Log    logger.Config  `mapstructure:"log"`
}

type WindowSettings struct {
	Width      int  `mapstructure:"width"`
	Height     int  `mapstructure:"height"`
	Fullscreen bool `mapstructure:"fullscreen"`
}

type AudioSettings struct {
	BasePath    string   `mapstructure:"base_path"`
	MusicVolume float64  `mapstructure:"music_volume"`
	SFXVolume   float64  `mapstructure:"sfx_volume"`
	Muted       bool     `mapstructure:"muted"`
	Preload     []string `mapstructure:"preload"`
}

type TimingSettings struct {
	LoadingProgress  time.Duration `mapstructure:"loading_progress"`
	LoadingFadeDelay time.Duration `mapstructure:"loading_fade_delay"`
	LoadingFade      time.Duration `mapstructure:"loading_fade"`
	SubmitDelay      time.Duration `mapstructure:"submit_delay"`
}

type CRTSettings struct {
	Enabled   bool    `mapstructure:"enabled"`
	Scanlines float64 `mapstructure:"scanlines"`
	Flicker   float64 `mapstructure:"flicker"`
	Glow      float64 `mapstructure:"glow"`
}

type DebugSettings struct {
	Hitboxes bool `mapstructure:"hitboxes"`
}

// envKeys are bound explicitly so ARCADE_* variables override keys that the
// config file does not mention.
var envKeys = []string{
	"window.width", "window.height", "window.fullscreen",
	"audio.base_path", "audio.music_volume", "audio.sfx_volume", "audio.muted", "audio.preload",
	"timing.loading_progress", "timing.loading_fade_delay", "timing.loading_fade", "timing.submit_delay",
	"crt.enabled", "crt.scanlines", "crt.flicker", "crt.glow",
	"debug.hitboxes",
	"log.level", "log.format", "log.console", "log.caller",
	"log.file.enabled", "log.file.path",
}

// DefaultSettings mirrors the package defaults.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{Width: C.Width * 2, Height: C.Height * 2},
		Audio: AudioSettings{
			BasePath:    Audio.BasePath,
			MusicVolume: Audio.MusicVolume,
			SFXVolume:   Audio.SFXVolume,
			Muted:       Audio.Muted,
			Preload:     append([]string(nil), Audio.Preload...),
		},
		Timing: TimingSettings{
			LoadingProgress:  seconds(Timing.LoadingProgress),
			LoadingFadeDelay: seconds(Timing.LoadingFadeDelay),
			LoadingFade:      seconds(Timing.LoadingFade),
			SubmitDelay:      seconds(Timing.SubmitDelay),
		},
		CRT: CRTSettings{
			Enabled:   CRT.Enabled,
			Scanlines: CRT.Scanlines,
			Flicker:   CRT.Flicker,
			Glow:      CRT.Glow,
		},
		Debug: DebugSettings{Hitboxes: Debug.Hitboxes},
		Log: logger.Config{
			Level:   "info",
			Format:  "console",
			Console: true,
			File: logger.FileConfig{
				Enabled:    false,
				Path:       "./logs/arcade.log",
				MaxSizeMB:  10,
				MaxBackups: 3,
				MaxAgeDays: 7,
			},
		},
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Load reads settings from path (or arcade.yaml in the working directory when
// path is empty) and the environment. A missing default file is not an error.
func Load(path string) (*Settings, error) {
	cfg := DefaultSettings()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("arcade")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.arcade")
	}

	v.SetEnvPrefix("ARCADE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range envKeys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", k, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (s *Settings) validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height))
	}
	if s.Audio.MusicVolume < 0 || s.Audio.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.music_volume %.2f out of range 0..1", s.Audio.MusicVolume))
	}
	if s.Audio.SFXVolume < 0 || s.Audio.SFXVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.sfx_volume %.2f out of range 0..1", s.Audio.SFXVolume))
	}
	if s.Timing.LoadingProgress <= 0 {
		errs = append(errs, errors.New("timing.loading_progress must be positive"))
	}
	if s.Timing.LoadingFadeDelay < 0 || s.Timing.LoadingFade < 0 || s.Timing.SubmitDelay < 0 {
		errs = append(errs, errors.New("timing durations must not be negative"))
	}
	for name, v := range map[string]float64{"scanlines": s.CRT.Scanlines, "flicker": s.CRT.Flicker, "glow": s.CRT.Glow} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("crt.%s %.2f out of range 0..1", name, v))
		}
	}
	return errors.Join(errs...)
}

// Apply copies settings into the package globals read by the game.
func (s *Settings) Apply() {
	Audio.BasePath = s.Audio.BasePath
	Audio.MusicVolume = s.Audio.MusicVolume
	Audio.SFXVolume = s.Audio.SFXVolume
	Audio.Muted = s.Audio.Muted
	Audio.Preload = s.Audio.Preload

	Timing.LoadingProgress = s.Timing.LoadingProgress.Seconds()
	Timing.LoadingFadeDelay = s.Timing.LoadingFadeDelay.Seconds()
	Timing.LoadingFade = s.Timing.LoadingFade.Seconds()
	Timing.SubmitDelay = s.Timing.SubmitDelay.Seconds()

	CRT.Enabled = s.CRT.Enabled
	CRT.Scanlines = s.CRT.Scanlines
	CRT.Flicker = s.CRT.Flicker
	CRT.Glow = s.CRT.Glow

	Debug.Hitboxes = s.Debug.Hitboxes
}
