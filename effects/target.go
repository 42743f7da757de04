// Package effects animates numeric properties of visual targets over time.
// Effects are scheduled with Animate or Stagger, advanced by Update from the
// game loop, and report progress through a single-shot Handle.
package effects

import "strconv"

// Property is an animatable value of a target.
type Property int

const (
	Opacity  Property = iota // 0..1
	OffsetX                  // pixels
	OffsetY                  // pixels
	Scale                    // 1 = natural size
	Width                    // fraction of natural width, 0..1
	Progress                 // 0..100
	Rotation                 // degrees
)

var propertyNames = map[Property]string{
	Opacity:  "opacity",
	OffsetX:  "x",
	OffsetY:  "y",
	Scale:    "scale",
	Width:    "width",
	Progress: "progress",
	Rotation: "rotation",
}

func (p Property) String() string {
	if name, ok := propertyNames[p]; ok {
		return name
	}
	return "unknown"
}

// defaultValue is what a property reads before anything sets it.
func (p Property) defaultValue() float64 {
	switch p {
	case Opacity, Scale, Width:
		return 1
	}
	return 0
}

// Target holds the animated values of one visual element. Renderers read
// values with Get; the service writes them.
type Target struct {
	Name     string
	values   map[Property]float64
	detached bool
}

func NewTarget(name string) *Target {
	return &Target{Name: name, values: make(map[Property]float64)}
}

// Get returns the current value of p.
func (t *Target) Get(p Property) float64 {
	if v, ok := t.values[p]; ok {
		return v
	}
	return p.defaultValue()
}

// Set overrides the current value of p.
func (t *Target) Set(p Property, v float64) {
	t.values[p] = v
}

// Detach marks the element as removed. Effects still running on it complete
// immediately on the next update.
func (t *Target) Detach() {
	t.detached = true
}

func (t *Target) Detached() bool {
	return t.detached
}

// Targets creates n targets named prefix-0 .. prefix-(n-1).
func Targets(prefix string, n int) []*Target {
	ts := make([]*Target, n)
	for i := range ts {
		ts[i] = NewTarget(prefix + "-" + strconv.Itoa(i))
	}
	return ts
}
