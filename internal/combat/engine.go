package combat

import (
	"math/rand"
)

// Config carries the explicit engine settings. Nothing here is ambient: the
// health-scaling toggle and the trace observer are threaded through every
// scoring and allocation call.
type Config struct {
	// ScaleEfficiencyByHealth scales every effective rate by the acting
	// unit's current health fraction.
	ScaleEfficiencyByHealth bool
	// MaxRounds bounds the battle; 0 means unbounded. A bound is needed in
	// practice: compositions where no one can hit anyone left alive
	// otherwise never terminate.
	MaxRounds int
	// Trace receives structured allocation and round events; nil silences.
	Trace TraceFunc
}

// Outcome is the battle's terminal state, or Running at a MaxRounds cutoff.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeArmyAWins
	OutcomeArmyBWins
	OutcomeMutualDestruction
)

func (o Outcome) String() string {
	switch o {
	case OutcomeArmyAWins:
		return "army_a_wins"
	case OutcomeArmyBWins:
		return "army_b_wins"
	case OutcomeMutualDestruction:
		return "mutual_destruction"
	}
	return "running"
}

// Step records the surviving headcounts after one round. Round 0 is the
// initial roster.
type Step struct {
	Round  int `json:"round"`
	AliveA int `json:"alive_a"`
	AliveB int `json:"alive_b"`
}

// Result is one finished battle.
type Result struct {
	Rounds     int
	Outcome    Outcome
	SurvivorsA Army
	SurvivorsB Army
	History    []Step
}

func outcomeOf(aliveA, aliveB int) Outcome {
	switch {
	case aliveA == 0 && aliveB == 0:
		return OutcomeMutualDestruction
	case aliveB == 0:
		return OutcomeArmyAWins
	case aliveA == 0:
		return OutcomeArmyBWins
	}
	return OutcomeRunning
}

// attackPass runs one side's full allocation pass against the defenders'
// round-start state. The allocated/provisional maps are private to the pass,
// so the two sides of a round never observe each other's work in progress.
func attackPass(attackers, defenders Army, strat Strategy, rng *rand.Rand, cfg Config) (map[*Unit]float64, error) {
	allocated := make(map[*Unit]float64, len(defenders))
	provisional := make(map[*Unit]float64, len(defenders))
	for _, d := range defenders {
		allocated[d] = 0
		provisional[d] = d.Health
	}

	var weights DangerWeights
	if strat.Kind == WeightedDanger || strat.Kind == WeightedProduct {
		weights = ComputeDangerWeights(attackers, defenders, cfg.ScaleEfficiencyByHealth)
	}

	for _, attacker := range attackers.Shuffled(rng) {
		ranked, err := RankTargets(strat, attacker, defenders, provisional, weights, cfg.ScaleEfficiencyByHealth)
		if err != nil {
			return nil, err
		}
		if len(ranked) == 0 {
			// No one left this attacker can hurt; it sits the round out.
			continue
		}
		trace := cfg.Trace
		if trace != nil {
			unit := attacker
			trace = func(ev Event) {
				ev.Payload["attacker"] = unit.Type
				cfg.Trace(ev)
			}
		}
		AllocateDamage(ranked, attacker.AttackPower(), allocated, provisional, trace)
	}
	return allocated, nil
}

// RunRound resolves one simultaneous round and returns the damage each side
// takes, keyed by unit. Both passes see only round-start health; neither map
// is applied here, so callers decide when the books settle.
func RunRound(armyA, armyB Army, stratA, stratB Strategy, rng *rand.Rand, cfg Config) (dmgToA, dmgToB map[*Unit]float64, err error) {
	aliveA := armyA.Alive()
	aliveB := armyB.Alive()
	dmgToB, err = attackPass(aliveA, aliveB, stratA, rng, cfg)
	if err != nil {
		return nil, nil, err
	}
	dmgToA, err = attackPass(aliveB, aliveA, stratB, rng, cfg)
	if err != nil {
		return nil, nil, err
	}
	return dmgToA, dmgToB, nil
}

func applyDamage(units Army, dmg map[*Unit]float64) {
	// One subtraction per unit; health may go below zero, only <= 0 matters.
	for _, u := range units {
		u.Health -= dmg[u]
	}
}

// Simulate runs a full battle to a terminal outcome or the MaxRounds cutoff.
// The rng drives only the per-round attacker shuffles, so a fixed seed
// reproduces the battle exactly.
func Simulate(armyA, armyB Army, stratA, stratB Strategy, rng *rand.Rand, cfg Config) (Result, error) {
	aliveA := armyA.Alive()
	aliveB := armyB.Alive()
	history := []Step{{Round: 0, AliveA: len(aliveA), AliveB: len(aliveB)}}

	round := 0
	outcome := outcomeOf(len(aliveA), len(aliveB))
	for outcome == OutcomeRunning {
		if cfg.MaxRounds > 0 && round >= cfg.MaxRounds {
			break
		}
		round++

		roundCfg := cfg
		if cfg.Trace != nil {
			r := round
			roundCfg.Trace = func(ev Event) {
				ev.Round = r
				cfg.Trace(ev)
			}
		}

		dmgToA, dmgToB, err := RunRound(aliveA, aliveB, stratA, stratB, rng, roundCfg)
		if err != nil {
			return Result{}, err
		}
		applyDamage(aliveA, dmgToA)
		applyDamage(aliveB, dmgToB)
		aliveA = aliveA.Alive()
		aliveB = aliveB.Alive()

		history = append(history, Step{Round: round, AliveA: len(aliveA), AliveB: len(aliveB)})
		roundCfg.Trace.emit(Event{Type: "RoundEnd", Payload: map[string]any{
			"alive_a": len(aliveA), "alive_b": len(aliveB),
		}})
		outcome = outcomeOf(len(aliveA), len(aliveB))
	}

	return Result{
		Rounds:     round,
		Outcome:    outcome,
		SurvivorsA: aliveA,
		SurvivorsB: aliveB,
		History:    history,
	}, nil
}
