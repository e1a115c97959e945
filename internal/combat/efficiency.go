package combat

import (
	"errors"
	"fmt"
)

// ErrUnknownTargetType is returned when a unit is asked to score a type its
// efficiency table has no entry for. Eligibility filtering keeps this out of
// the normal flow, so seeing it means a caller skipped the filter.
var ErrUnknownTargetType = errors.New("unknown target type")

// ScaledEfficiency returns the unit's effective damage rate against the
// given enemy type. With scaleByHealth set, the base rate is multiplied by
// the unit's current health fraction, so battered units hit softer.
func ScaledEfficiency(u *Unit, enemyType string, scaleByHealth bool) (float64, error) {
	rate, ok := u.Efficiencies[enemyType]
	if !ok {
		return 0, fmt.Errorf("%w: %s cannot target %s", ErrUnknownTargetType, u.Type, enemyType)
	}
	if scaleByHealth {
		rate *= u.Health / u.MaxHealth
	}
	return rate, nil
}

// scaledEfficiencyOrZero is the tolerant lookup used for danger-style
// scores: a unit with no entry for a type simply poses no danger to it.
func scaledEfficiencyOrZero(u *Unit, enemyType string, scaleByHealth bool) float64 {
	rate, ok := u.Efficiencies[enemyType]
	if !ok {
		return 0
	}
	if scaleByHealth {
		rate *= u.Health / u.MaxHealth
	}
	return rate
}
