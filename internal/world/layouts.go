package world

import (
	"log"
	"sort"
)

// Layout is a named board preset.
type Layout struct {
	Name           string  `json:"name"`
	Radius         int     `json:"radius"`
	BaseFriction   float64 `json:"baseFriction"`
	FrictionJitter float64 `json:"frictionJitter"`
}

const DefaultLayout = "classic"

var layouts = map[string]Layout{
	// the table-top board footprint
	"classic": {Name: "classic", Radius: 3, BaseFriction: 0.5, FrictionJitter: 0.2},
	"floe":    {Name: "floe", Radius: 2, BaseFriction: 0.5, FrictionJitter: 0.25},
	"glacier": {Name: "glacier", Radius: 4, BaseFriction: 0.75, FrictionJitter: 0.1},
	"thinice": {Name: "thinice", Radius: 3, BaseFriction: 0.2, FrictionJitter: 0.15},
}

// LookupLayout returns the named layout, falling back to classic for unknown names.
func LookupLayout(name string) Layout {
	l, ok := layouts[name]
	if !ok {
		log.Printf("Unknown layout '%s', falling back to %s", name, DefaultLayout)
		return layouts[DefaultLayout]
	}
	return l
}

// Layouts lists every preset sorted by name.
func Layouts() []Layout {
	out := make([]Layout, 0, len(layouts))
	for _, l := range layouts {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Config builds a board config from the layout; everything it does not set
// keeps the defaults.
func (l Layout) Config() Config {
	cfg := DefaultConfig()
	cfg.Radius = l.Radius
	cfg.BaseFriction = l.BaseFriction
	cfg.FrictionJitter = l.FrictionJitter
	return cfg
}
