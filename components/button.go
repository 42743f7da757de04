package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/arcade-portfolio/effects"
)

// ButtonData is a clickable region drawn as an arcade button.
type ButtonData struct {
	Label    string
	OnClick  func()
	Hovered  bool
	Disabled bool
	Target   *effects.Target // optional; hides the button while transparent
	Index    int             // menu slot the button selects on hover, -1 for none
}

var Button = donburi.NewComponentType[ButtonData]()
