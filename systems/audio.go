package systems

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/arcade-portfolio/assets"
	"github.com/automoto/arcade-portfolio/components"
	cfg "github.com/automoto/arcade-portfolio/config"
	"github.com/automoto/arcade-portfolio/logger"
	"github.com/automoto/arcade-portfolio/sound"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalCues         *CueService
	globalMusic        *MusicTrack
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(os.DirFS(cfg.Audio.BasePath), cfg.Audio.SampleRate)
		globalCues = newCueService(globalAudioContext, globalAudioLoader, sound.Cues)
		globalMusic = &MusicTrack{svc: globalCues}
	})
}

// Cues returns the process-wide cue service.
func Cues() *CueService {
	initGlobalAudio()
	return globalCues
}

// Music returns the background track driven by the mute toggle.
func Music() *MusicTrack {
	initGlobalAudio()
	return globalMusic
}

// PreloadAllSFX decodes the configured cues at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()
	for _, id := range cfg.Audio.Preload {
		globalCues.Preload(sound.CueID(id))
	}
}

// CueService plays catalog cues through ebiten's audio context. Cues whose
// file is missing fall back to their synthesized tune.
type CueService struct {
	ctx     *audio.Context
	loader  *assets.AudioLoader
	catalog sound.Catalog
	players map[sound.CueID][]*audio.Player
	synth   map[sound.CueID][]byte
	missing map[sound.CueID]bool
	log     zerolog.Logger
}

func newCueService(ctx *audio.Context, loader *assets.AudioLoader, catalog sound.Catalog) *CueService {
	return &CueService{
		ctx:     ctx,
		loader:  loader,
		catalog: catalog,
		players: make(map[sound.CueID][]*audio.Player),
		synth:   make(map[sound.CueID][]byte),
		missing: make(map[sound.CueID]bool),
		log:     logger.GetLogger("audio"),
	}
}

// Preload decodes a one-shot cue so the first Play does not stall.
func (s *CueService) Preload(id sound.CueID) {
	cue, ok := s.catalog[id]
	if !ok {
		s.log.Warn().Str("cue", string(id)).Msg("unknown cue in preload list")
		return
	}
	if cue.Loop {
		return
	}
	_ = s.pcm(id, cue)
}

func (s *CueService) Play(id sound.CueID, opts sound.Options) {
	cue, ok := s.catalog[id]
	if !ok {
		s.log.Warn().Str("cue", string(id)).Msg("unknown cue")
		return
	}
	s.prune(id)

	var player *audio.Player
	if opts.Loop {
		stream, length := s.stream(id, cue)
		p, err := s.ctx.NewPlayer(audio.NewInfiniteLoop(stream, length))
		if err != nil {
			s.log.Warn().Err(err).Str("cue", string(id)).Msg("failed to create looping player")
			return
		}
		player = p
	} else {
		player = s.ctx.NewPlayerFromBytes(s.pcm(id, cue))
	}

	player.SetVolume(opts.Volume * s.scale(cue))
	player.Play()
	s.players[id] = append(s.players[id], player)
}

func (s *CueService) Pause(id sound.CueID) {
	for _, p := range s.players[id] {
		p.Pause()
	}
}

func (s *CueService) Stop(id sound.CueID) {
	for _, p := range s.players[id] {
		p.Pause()
		_ = p.Close()
	}
	delete(s.players, id)
}

// Resume continues paused players of a cue. It reports false when the cue
// has no players to resume.
func (s *CueService) Resume(id sound.CueID) bool {
	ps := s.players[id]
	for _, p := range ps {
		p.Play()
	}
	return len(ps) > 0
}

// Playing reports whether any player of the cue is audible.
func (s *CueService) Playing(id sound.CueID) bool {
	for _, p := range s.players[id] {
		if p.IsPlaying() {
			return true
		}
	}
	return false
}

// prune closes finished one-shot players.
func (s *CueService) prune(id sound.CueID) {
	if s.catalog[id].Loop {
		return
	}
	kept := s.players[id][:0]
	for _, p := range s.players[id] {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	s.players[id] = kept
}

func (s *CueService) scale(cue sound.Cue) float64 {
	if cue.Loop {
		return cfg.Audio.MusicVolume
	}
	return cfg.Audio.SFXVolume
}

func (s *CueService) pcm(id sound.CueID, cue sound.Cue) []byte {
	if !s.missing[id] {
		data, err := s.loader.LoadSFX(cue.File)
		if err == nil {
			return data
		}
		s.missing[id] = true
		s.log.Debug().Err(err).Str("cue", string(id)).Msg("using synthesized cue")
	}
	return s.tune(id, cue)
}

func (s *CueService) stream(id sound.CueID, cue sound.Cue) (io.ReadSeeker, int64) {
	if !s.missing[id] {
		stream, length, err := s.loader.LoadMusic(cue.File)
		if err == nil {
			return stream, length
		}
		s.missing[id] = true
		s.log.Debug().Err(err).Str("cue", string(id)).Msg("using synthesized track")
	}
	data := s.tune(id, cue)
	return bytes.NewReader(data), int64(len(data))
}

func (s *CueService) tune(id sound.CueID, cue sound.Cue) []byte {
	if data, ok := s.synth[id]; ok {
		return data
	}
	data := cue.Tune.Render(cfg.Audio.SampleRate)
	s.synth[id] = data
	return data
}

// MusicTrack adapts the background cue to sound.Track.
type MusicTrack struct {
	svc *CueService
}

func (m *MusicTrack) Play() {
	if m.svc.Resume(sound.CueBackground) {
		return
	}
	sound.Cues.Play(m.svc, sound.CueBackground)
}

func (m *MusicTrack) Pause() {
	m.svc.Pause(sound.CueBackground)
}

func (m *MusicTrack) IsPlaying() bool {
	return m.svc.Playing(sound.CueBackground)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}
