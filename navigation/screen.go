// Package navigation owns which screen is presented. Screens are a closed
// set; moves between them are validated against a fixed transition table and
// fire the target screen's entry cue.
package navigation

import "fmt"

// ScreenID identifies one full-window view.
type ScreenID int

const (
	Loading ScreenID = iota
	Start
	Levels
	About
	Skills
	Projects
	Contact
	screenCount // Must be last
)

var screenNames = map[ScreenID]string{
	Loading:  "loading",
	Start:    "start",
	Levels:   "levels",
	About:    "about",
	Skills:   "skills",
	Projects: "projects",
	Contact:  "contact",
}

func (s ScreenID) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s is one of the defined screens.
func (s ScreenID) Valid() bool {
	return s >= Loading && s < screenCount
}

// ParseScreenID converts a screen name to its id.
func ParseScreenID(name string) (ScreenID, error) {
	for id, n := range screenNames {
		if n == name {
			return id, nil
		}
	}
	return Loading, fmt.Errorf("unknown screen %q", name)
}

// AllScreens returns every screen in declaration order.
func AllScreens() []ScreenID {
	ids := make([]ScreenID, 0, screenCount)
	for id := Loading; id < screenCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Trigger is what caused a transition request.
type Trigger int

const (
	// TriggerUser is a direct player action.
	TriggerUser Trigger = iota
	// TriggerEffect is the completion of a scheduled effect.
	TriggerEffect
)

func (t Trigger) String() string {
	switch t {
	case TriggerUser:
		return "user"
	case TriggerEffect:
		return "effect-completion"
	}
	return "unknown"
}

// Transition is a completed move between screens.
type Transition struct {
	From    ScreenID
	To      ScreenID
	Trigger Trigger
}
