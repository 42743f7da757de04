package systems

import (
	"strings"

	"github.com/automoto/arcade-portfolio/logger"
	"github.com/automoto/arcade-portfolio/navigation"
	"github.com/yohamta/donburi/ecs"
)

// Navigator requests screen changes from the navigation machine.
type Navigator interface {
	RequestTransition(to navigation.ScreenID, trigger navigation.Trigger) (navigation.ScreenID, error)
}

// Navigate requests a user transition out of the current screen. Once a
// request succeeds the screen is marked as leaving and further requests
// from it are ignored.
func Navigate(ecs *ecs.ECS, nav Navigator, to navigation.ScreenID) bool {
	s := GetScreen(ecs)
	if s == nil || s.Exit {
		return false
	}
	if _, err := nav.RequestTransition(to, navigation.TriggerUser); err != nil {
		log := logger.GetLogger("scenes")
		log.Debug().Err(err).Msg("navigation ignored")
		return false
	}
	s.Exit = true
	return true
}

// NavLabel is the caption of a button leading to id.
func NavLabel(from, to navigation.ScreenID) string {
	name := strings.ToUpper(to.String())
	if to == navigation.Levels {
		return "LEVEL SELECT"
	}
	if to < from {
		return "< " + name
	}
	return name + " >"
}
