// Package game implements the endless-runner simulation: a character runs
// across a planet surface and jumps over incoming obstacles, with physics
// tuned per selectable planet. The package contains pure logic with no
// external dependencies; the platform layer handles input mapping, timing,
// and rendering.
package game

import (
	"sort"

	"github.com/kanadn/dino-run-game/internal/config"
)

// Planet is a closed enumeration of the selectable worlds.
type Planet int

const (
	PlanetEarth Planet = iota
	PlanetMoon
	PlanetMars
	PlanetJupiter

	planetCount
)

// DefaultPlanet is the profile used when an unrecognized name is supplied.
const DefaultPlanet = PlanetEarth

// String returns the planet's lowercase name.
func (p Planet) String() string {
	switch p {
	case PlanetEarth:
		return "earth"
	case PlanetMoon:
		return "moon"
	case PlanetMars:
		return "mars"
	case PlanetJupiter:
		return "jupiter"
	default:
		return "unknown"
	}
}

// Next returns the planet offset cells ahead in the enumeration, wrapping
// around. Used by the planet selector.
func (p Planet) Next(offset int) Planet {
	n := int(planetCount)
	return Planet(((int(p)+offset)%n + n) % n)
}

// Planets returns all selectable planets in enumeration order.
func Planets() []Planet {
	out := make([]Planet, 0, planetCount)
	for p := PlanetEarth; p < planetCount; p++ {
		out = append(out, p)
	}
	return out
}

// ParsePlanet maps a name to its planet. The second return value reports
// whether the name was recognized; callers fall back to DefaultPlanet when it
// is false.
func ParsePlanet(name string) (Planet, bool) {
	for p := PlanetEarth; p < planetCount; p++ {
		if p.String() == name {
			return p, true
		}
	}
	return DefaultPlanet, false
}

// PhysicsProfile holds the per-planet physics constants, in cells per tick.
type PhysicsProfile struct {
	Gravity     float64
	JumpImpulse float64
}

// ProfileTable is a total mapping from every planet to its physics profile.
// Indexing by Planet cannot miss.
type ProfileTable [planetCount]PhysicsProfile

// DefaultProfiles returns the built-in physics table.
func DefaultProfiles() ProfileTable {
	var t ProfileTable
	cfg := config.Default()
	for p := PlanetEarth; p < planetCount; p++ {
		pc := cfg.Planets[p.String()]
		t[p] = PhysicsProfile{Gravity: pc.Gravity, JumpImpulse: pc.JumpImpulse}
	}
	return t
}

// ProfilesFromConfig builds a profile table from the configured planet map.
// Only enumerated planets are applied; unknown keys are ignored and missing
// keys keep their built-in constants, so the table stays total.
func ProfilesFromConfig(planets map[string]config.PlanetConfig) ProfileTable {
	t := DefaultProfiles()

	// Deterministic application order in case of duplicate-ish input.
	names := make([]string, 0, len(planets))
	for name := range planets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p, ok := ParsePlanet(name)
		if !ok {
			continue
		}
		pc := planets[name]
		if pc.Gravity > 0 && pc.JumpImpulse > 0 {
			t[p] = PhysicsProfile{Gravity: pc.Gravity, JumpImpulse: pc.JumpImpulse}
		}
	}
	return t
}
