package report

import (
	"encoding/json"

	"skirmish/internal/combat"
)

// Summary is the JSON document written after a single battle.
type Summary struct {
	Scenario   string         `json:"scenario"`
	StrategyA  string         `json:"strategy_a"`
	StrategyB  string         `json:"strategy_b"`
	Seed       int64          `json:"seed"`
	Rounds     int            `json:"rounds"`
	Outcome    string         `json:"outcome"`
	SurvivorsA SideSummary    `json:"survivors_a"`
	SurvivorsB SideSummary    `json:"survivors_b"`
	History    []combat.Step  `json:"history"`
	Events     []combat.Event `json:"events,omitempty"`
}

// SideSummary is one army's final headcount, total and per type.
type SideSummary struct {
	Count  int            `json:"count"`
	ByType map[string]int `json:"by_type,omitempty"`
}

func sideSummary(a combat.Army) SideSummary {
	s := SideSummary{Count: len(a.Alive())}
	if comp := a.Composition(); len(comp) > 0 {
		s.ByType = comp
	}
	return s
}

// BuildSummary folds a battle result and its captured events into the
// output document.
func BuildSummary(scenario string, stratA, stratB combat.Strategy, seed int64, res combat.Result, events []combat.Event) Summary {
	return Summary{
		Scenario:   scenario,
		StrategyA:  stratA.Name(),
		StrategyB:  stratB.Name(),
		Seed:       seed,
		Rounds:     res.Rounds,
		Outcome:    res.Outcome.String(),
		SurvivorsA: sideSummary(res.SurvivorsA),
		SurvivorsB: sideSummary(res.SurvivorsB),
		History:    res.History,
		Events:     events,
	}
}

// MarshalPretty renders any result document as indented JSON.
func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
