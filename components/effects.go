package components

import "github.com/yohamta/donburi"

// StarData is one point of the start screen's starfield. Z shrinks toward
// the viewer; the star respawns far away once it passes.
type StarData struct {
	X, Y, Z float64
}

var Star = donburi.NewComponentType[StarData]()

// FlashData tracks a short full-screen flash (coin insert, level pick)
type FlashData struct {
	Duration int     // frames remaining
	Total    int     // frames at start
	R, G, B  float32 // flash color
}

var Flash = donburi.NewComponentType[FlashData]()
