package tags

import "github.com/yohamta/donburi"

var (
	Button = donburi.NewTag().SetName("Button")
	Star   = donburi.NewTag().SetName("Star")
	Mute   = donburi.NewTag().SetName("Mute")
)

// Resolv tags for pointer hit-testing
const (
	ResolvButton = "button"
	ResolvCursor = "cursor"
)
