package combat

import (
	"fmt"
	"sort"
)

// ScoreKind selects the primary score a strategy ranks targets by.
type ScoreKind int

const (
	// EfficiencyOnly ranks by the attacker's effective rate vs the target.
	EfficiencyOnly ScoreKind = iota
	// DangerOnly ranks by how hard the target would hit the attacker back.
	DangerOnly
	// Product ranks by efficiency times danger.
	Product
	// WeightedDanger ranks by the target's per-capita expected damage output
	// against the whole attacking force, not just the acting unit.
	WeightedDanger
	// WeightedProduct ranks by weighted danger times efficiency.
	WeightedProduct
)

func (k ScoreKind) String() string {
	switch k {
	case EfficiencyOnly:
		return "efficiency"
	case DangerOnly:
		return "danger"
	case Product:
		return "product"
	case WeightedDanger:
		return "weighted_danger"
	case WeightedProduct:
		return "weighted_product"
	}
	return fmt.Sprintf("score_kind(%d)", int(k))
}

// Strategy is one targeting policy: a primary score plus an optional
// health adjustment that divides the score by the target's current health,
// biasing toward finishing wounded targets.
type Strategy struct {
	Kind         ScoreKind
	HealthAdjust bool
}

// Name is the stable identifier used in CLI flags and reports.
func (s Strategy) Name() string {
	if s.HealthAdjust {
		return s.Kind.String() + "_weak"
	}
	return s.Kind.String()
}

// Strategies returns all ten policies: five score kinds, each with and
// without the health adjustment.
func Strategies() []Strategy {
	kinds := []ScoreKind{EfficiencyOnly, DangerOnly, Product, WeightedDanger, WeightedProduct}
	out := make([]Strategy, 0, 2*len(kinds))
	for _, k := range kinds {
		out = append(out, Strategy{Kind: k})
		out = append(out, Strategy{Kind: k, HealthAdjust: true})
	}
	return out
}

// StrategyByName resolves a strategy from its Name form.
func StrategyByName(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if s.Name() == name {
			return s, nil
		}
	}
	return Strategy{}, fmt.Errorf("unknown strategy %q", name)
}

// DangerWeights holds the weighted-danger score per enemy target. It depends
// only on the attacking side's composition, so the engine computes it once
// per round per side rather than per attacker.
type DangerWeights map[*Unit]float64

// ComputeDangerWeights scores each target by its expected damage output
// against the attacking force: for every attacker type present, the target's
// effective rate vs that type times the type's headcount, summed and divided
// by the total attacker count.
func ComputeDangerWeights(attackers Army, targets []*Unit, scaleByHealth bool) DangerWeights {
	comp := attackers.Composition()
	total := 0
	for _, n := range comp {
		total += n
	}
	weights := make(DangerWeights, len(targets))
	if total == 0 {
		for _, t := range targets {
			weights[t] = 0
		}
		return weights
	}
	types := attackers.Types()
	for _, target := range targets {
		sum := 0.0
		for _, typ := range types {
			sum += scaledEfficiencyOrZero(target, typ, scaleByHealth) * float64(comp[typ])
		}
		weights[target] = sum / float64(total)
	}
	return weights
}

func (s Strategy) score(attacker, target *Unit, weights DangerWeights, scaleByHealth bool) (float64, error) {
	var primary float64
	switch s.Kind {
	case EfficiencyOnly:
		eff, err := ScaledEfficiency(attacker, target.Type, scaleByHealth)
		if err != nil {
			return 0, err
		}
		primary = eff
	case DangerOnly:
		primary = scaledEfficiencyOrZero(target, attacker.Type, scaleByHealth)
	case Product:
		eff, err := ScaledEfficiency(attacker, target.Type, scaleByHealth)
		if err != nil {
			return 0, err
		}
		primary = eff * scaledEfficiencyOrZero(target, attacker.Type, scaleByHealth)
	case WeightedDanger:
		primary = weights[target]
	case WeightedProduct:
		eff, err := ScaledEfficiency(attacker, target.Type, scaleByHealth)
		if err != nil {
			return 0, err
		}
		primary = weights[target] * eff
	default:
		return 0, fmt.Errorf("unknown score kind %v", s.Kind)
	}
	if s.HealthAdjust {
		// True current health, not the provisional view.
		primary /= target.Health
	}
	return primary, nil
}

// RankTargets returns the attacker's eligible targets best-first. A target
// is eligible when its provisional health is still positive and the attacker
// has an efficiency entry for its type. Equal scores break toward the lower
// current health.
func RankTargets(s Strategy, attacker *Unit, candidates []*Unit, provisional map[*Unit]float64, weights DangerWeights, scaleByHealth bool) ([]*Unit, error) {
	type scored struct {
		unit  *Unit
		score float64
	}
	eligible := make([]scored, 0, len(candidates))
	for _, target := range candidates {
		if provisional[target] <= 0 {
			continue
		}
		if _, ok := attacker.Efficiencies[target.Type]; !ok {
			continue
		}
		sc, err := s.score(attacker, target, weights, scaleByHealth)
		if err != nil {
			return nil, err
		}
		eligible = append(eligible, scored{unit: target, score: sc})
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].score != eligible[j].score {
			return eligible[i].score > eligible[j].score
		}
		return eligible[i].unit.Health < eligible[j].unit.Health
	})
	ranked := make([]*Unit, len(eligible))
	for i, e := range eligible {
		ranked[i] = e.unit
	}
	return ranked, nil
}
