package navigation

import (
	"github.com/samber/lo"

	"github.com/automoto/arcade-portfolio/effects"
	"github.com/automoto/arcade-portfolio/sound"
)

// Edge is a legal move out of a screen.
type Edge struct {
	To      ScreenID
	Trigger Trigger
}

// Scope selects which part of a screen an entry effect applies to.
type Scope int

const (
	ScopeRoot     Scope = iota // the screen's root container
	ScopeChildren              // the notable children, staggered in display order
)

// EntryEffect is an effect scheduled when a screen becomes current.
type EntryEffect struct {
	Scope Scope
	Spec  effects.Spec
}

// Descriptor is the static configuration of one screen.
type Descriptor struct {
	ID           ScreenID
	Title        string
	Edges        []Edge
	EntryEffects []EntryEffect
	EntryCue     sound.CueID
}

// Allows reports whether the descriptor declares an edge to `to` with the
// given trigger.
func (d Descriptor) Allows(to ScreenID, trigger Trigger) bool {
	return lo.ContainsBy(d.Edges, func(e Edge) bool {
		return e.To == to && e.Trigger == trigger
	})
}

// Next returns the screens reachable from this one, in declared order.
func (d Descriptor) Next() []ScreenID {
	return lo.Uniq(lo.Map(d.Edges, func(e Edge, _ int) ScreenID { return e.To }))
}

// Enter schedules the descriptor's entry effects on a screen's root and
// children. The returned handle completes when every entry effect has.
func (d Descriptor) Enter(fx *effects.Service, root *effects.Target, children []*effects.Target) *effects.Handle {
	var handles []*effects.Handle
	for _, e := range d.EntryEffects {
		switch e.Scope {
		case ScopeRoot:
			if root != nil {
				handles = append(handles, fx.Run(e.Spec, root))
			}
		case ScopeChildren:
			handles = append(handles, fx.Stagger(children, e.Spec.Changes, e.Spec.Config))
		}
	}
	return fx.All(handles...)
}

// Registry maps every screen to its descriptor.
type Registry map[ScreenID]Descriptor

// Lookup returns the descriptor for id.
func (r Registry) Lookup(id ScreenID) (Descriptor, bool) {
	d, ok := r[id]
	return d, ok
}

var rootFadeIn = EntryEffect{
	Scope: ScopeRoot,
	Spec: effects.Spec{
		Changes: effects.Changes{effects.Opacity: {From: 0, To: 1}},
		Config:  effects.Config{Duration: 1, Easing: effects.Named("linear")},
	},
}

func riseIn(offset, stagger float64, extra effects.Changes) EntryEffect {
	changes := effects.Changes{
		effects.OffsetY: {From: offset, To: 0},
		effects.Opacity: {From: 0, To: 1},
	}
	for p, c := range extra {
		changes[p] = c
	}
	return EntryEffect{
		Scope: ScopeChildren,
		Spec: effects.Spec{
			Changes: changes,
			Config: effects.Config{
				Duration: 0.8,
				Delay:    0.5,
				Stagger:  stagger,
				Easing:   effects.Named("power3.out"),
			},
		},
	}
}

func user(to ...ScreenID) []Edge {
	return lo.Map(to, func(id ScreenID, _ int) Edge { return Edge{To: id, Trigger: TriggerUser} })
}

// DefaultRegistry returns the arcade's screens and transition table.
func DefaultRegistry() Registry {
	return Registry{
		Loading: {
			ID:           Loading,
			Title:        "LOADING GAME DATA...",
			Edges:        []Edge{{To: Start, Trigger: TriggerEffect}},
			EntryEffects: []EntryEffect{rootFadeIn},
			EntryCue:     sound.CueStartup,
		},
		Start: {
			ID:           Start,
			Title:        "JaePyJs ADVENTURE",
			Edges:        user(Levels),
			EntryEffects: []EntryEffect{rootFadeIn},
		},
		Levels: {
			ID:           Levels,
			Title:        "SELECT LEVEL",
			Edges:        user(About, Skills, Projects, Contact),
			EntryEffects: []EntryEffect{rootFadeIn, riseIn(50, 0.2, nil)},
		},
		About: {
			ID:    About,
			Title: "LEVEL 1: ABOUT ME",
			Edges: user(Levels, Skills),
			EntryEffects: []EntryEffect{
				rootFadeIn,
				riseIn(50, 0.2, effects.Changes{effects.Width: {From: 0, To: 1}}),
			},
			EntryCue: sound.CueSelect,
		},
		Skills: {
			ID:           Skills,
			Title:        "LEVEL 2: SKILLS",
			Edges:        user(About, Projects),
			EntryEffects: []EntryEffect{rootFadeIn, riseIn(50, 0.1, nil)},
			EntryCue:     sound.CueSelect,
		},
		Projects: {
			ID:           Projects,
			Title:        "LEVEL 3: PROJECTS",
			Edges:        user(Skills, Contact),
			EntryEffects: []EntryEffect{rootFadeIn, riseIn(100, 0.2, nil)},
			EntryCue:     sound.CueSelect,
		},
		Contact: {
			ID:           Contact,
			Title:        "LEVEL 4: CONTACT",
			Edges:        user(Projects, Levels),
			EntryEffects: []EntryEffect{rootFadeIn, riseIn(50, 0, nil)},
			EntryCue:     sound.CueSelect,
		},
	}
}
