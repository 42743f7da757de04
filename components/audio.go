package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/arcade-portfolio/sound"
)

// AudioData stores the scene's view of audio (singleton component)
type AudioData struct {
	Cues  *sound.Scope  // cues started by this screen
	Music *sound.Toggle // process-wide mute toggle
}

var Audio = donburi.NewComponentType[AudioData]()
