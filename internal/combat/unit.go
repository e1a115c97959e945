package combat

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// ErrInvalidUnit is returned when a unit is constructed with a non-positive
// health value or a negative efficiency rate.
var ErrInvalidUnit = errors.New("invalid unit")

// Unit is one combatant. Efficiencies maps an enemy type to the base damage
// rate per round against that type. A missing entry means the enemy type
// cannot be targeted at all; a zero entry is targetable but ineffective.
// The table is fixed at construction.
type Unit struct {
	Type         string
	Health       float64
	MaxHealth    float64
	Efficiencies map[string]float64
}

// NewUnit validates and builds a unit. Health becomes both current and max
// health. The efficiency table is copied so later mutation of the argument
// cannot leak into the unit.
func NewUnit(typ string, health float64, efficiencies map[string]float64) (*Unit, error) {
	if health <= 0 {
		return nil, fmt.Errorf("%w: %s has non-positive health %g", ErrInvalidUnit, typ, health)
	}
	eff := make(map[string]float64, len(efficiencies))
	for enemy, rate := range efficiencies {
		if rate < 0 {
			return nil, fmt.Errorf("%w: %s has negative efficiency %g vs %s", ErrInvalidUnit, typ, rate, enemy)
		}
		eff[enemy] = rate
	}
	return &Unit{Type: typ, Health: health, MaxHealth: health, Efficiencies: eff}, nil
}

// Alive reports whether the unit is still in the fight.
func (u *Unit) Alive() bool { return u.Health > 0 }

// AttackPower is the fixed damage budget the unit spends per round: the
// maximum rate in its efficiency table, regardless of which target the
// budget finally lands on.
func (u *Unit) AttackPower() float64 {
	power := 0.0
	for _, rate := range u.Efficiencies {
		if rate > power {
			power = rate
		}
	}
	return power
}

// Army is an ordered collection of units. Order carries no meaning beyond
// being the base for the per-round shuffled attacker order.
type Army []*Unit

// Alive returns the living units, preserving order.
func (a Army) Alive() Army {
	out := make(Army, 0, len(a))
	for _, u := range a {
		if u.Alive() {
			out = append(out, u)
		}
	}
	return out
}

// Composition counts living units per type. It is recomputed on demand and
// never cached, so it always reflects current casualties.
func (a Army) Composition() map[string]int {
	comp := make(map[string]int)
	for _, u := range a {
		if u.Alive() {
			comp[u.Type]++
		}
	}
	return comp
}

// Types returns the living types in sorted order, for deterministic
// iteration over a composition.
func (a Army) Types() []string {
	comp := a.Composition()
	types := make([]string, 0, len(comp))
	for t := range comp {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Shuffled returns a copy of the army in random order.
func (a Army) Shuffled(rng *rand.Rand) Army {
	out := make(Army, len(a))
	copy(out, a)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
