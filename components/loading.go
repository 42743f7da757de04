package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/arcade-portfolio/loading"
)

// LoadingData holds the coin gate of the loading screen.
type LoadingData struct {
	Gate *loading.Gate
}

var Loading = donburi.NewComponentType[LoadingData]()
