package combat

import (
	"reflect"
	"testing"

	"skirmish/internal/util"
)

func testArmies(t *testing.T) (Army, Army) {
	t.Helper()
	infantry := map[string]float64{"infantry": 3, "archer": 4}
	archer := map[string]float64{"infantry": 4, "archer": 2}

	var a, b Army
	for i := 0; i < 4; i++ {
		a = append(a, mustUnit(t, "infantry", 12, infantry))
	}
	for i := 0; i < 2; i++ {
		a = append(a, mustUnit(t, "archer", 8, archer))
	}
	for i := 0; i < 3; i++ {
		b = append(b, mustUnit(t, "infantry", 12, infantry))
	}
	for i := 0; i < 3; i++ {
		b = append(b, mustUnit(t, "archer", 8, archer))
	}
	return a, b
}

func TestSimulateDeterministicForSeed(t *testing.T) {
	cfg := Config{ScaleEfficiencyByHealth: true, MaxRounds: 200}
	strat := Strategy{Kind: WeightedProduct, HealthAdjust: true}

	run := func() Result {
		a, b := testArmies(t)
		res, err := Simulate(a, b, strat, Strategy{Kind: DangerOnly}, util.New(99), cfg)
		if err != nil {
			t.Fatalf("simulate: %v", err)
		}
		return res
	}

	first := run()
	second := run()
	if first.Rounds != second.Rounds || first.Outcome != second.Outcome {
		t.Fatalf("runs diverged: %d/%v vs %d/%v", first.Rounds, first.Outcome, second.Rounds, second.Outcome)
	}
	if !reflect.DeepEqual(first.History, second.History) {
		t.Fatalf("histories diverged:\n%v\n%v", first.History, second.History)
	}
	for i := range first.SurvivorsA {
		if first.SurvivorsA[i].Type != second.SurvivorsA[i].Type ||
			first.SurvivorsA[i].Health != second.SurvivorsA[i].Health {
			t.Fatalf("survivor %d diverged between identical runs", i)
		}
	}
}

func TestRoundDamageMatchesApplication(t *testing.T) {
	cfg := Config{MaxRounds: 1}
	stratA := Strategy{Kind: EfficiencyOnly}
	stratB := Strategy{Kind: DangerOnly}

	// Two identical rosters: resolve one round standalone on the first, let
	// Simulate apply the same round to the second, then compare books.
	a1, b1 := testArmies(t)
	dmgToA, dmgToB, err := RunRound(a1, b1, stratA, stratB, util.New(5), cfg)
	if err != nil {
		t.Fatalf("run round: %v", err)
	}

	a2, b2 := testArmies(t)
	if _, err := Simulate(a2, b2, stratA, stratB, util.New(5), cfg); err != nil {
		t.Fatalf("simulate: %v", err)
	}

	for i := range b1 {
		want := b1[i].Health - dmgToB[b1[i]]
		if b2[i].Health != want {
			t.Fatalf("army B unit %d health = %g, want %g (allocated %g)", i, b2[i].Health, want, dmgToB[b1[i]])
		}
	}
	for i := range a1 {
		want := a1[i].Health - dmgToA[a1[i]]
		if a2[i].Health != want {
			t.Fatalf("army A unit %d health = %g, want %g (allocated %g)", i, a2[i].Health, want, dmgToA[a1[i]])
		}
	}
}

func TestSimulateMonotonicAndTerminates(t *testing.T) {
	a, b := testArmies(t)
	res, err := Simulate(a, b, Strategy{Kind: Product}, Strategy{Kind: EfficiencyOnly, HealthAdjust: true}, util.New(3), Config{MaxRounds: 1000})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if res.Outcome == OutcomeRunning {
		t.Fatalf("expected a terminal outcome, still running after %d rounds", res.Rounds)
	}
	for i := 1; i < len(res.History); i++ {
		prev, cur := res.History[i-1], res.History[i]
		if cur.AliveA > prev.AliveA || cur.AliveB > prev.AliveB {
			t.Fatalf("survivor counts increased at round %d: %v -> %v", cur.Round, prev, cur)
		}
	}
	last := res.History[len(res.History)-1]
	if last.AliveA != len(res.SurvivorsA) || last.AliveB != len(res.SurvivorsB) {
		t.Fatalf("history tail %v does not match survivors %d/%d", last, len(res.SurvivorsA), len(res.SurvivorsB))
	}
}

func TestSimulateEmptyArmies(t *testing.T) {
	_, b := testArmies(t)
	res, err := Simulate(nil, b, Strategy{}, Strategy{}, util.New(1), Config{})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if res.Rounds != 0 || res.Outcome != OutcomeArmyBWins {
		t.Fatalf("empty A: rounds=%d outcome=%v, want 0 rounds and army B win", res.Rounds, res.Outcome)
	}

	res, err = Simulate(nil, nil, Strategy{}, Strategy{}, util.New(1), Config{})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if res.Rounds != 0 || res.Outcome != OutcomeMutualDestruction {
		t.Fatalf("both empty: rounds=%d outcome=%v", res.Rounds, res.Outcome)
	}
}

func TestSimulateSimultaneousMutualDestruction(t *testing.T) {
	a := Army{mustUnit(t, "a", 5, map[string]float64{"b": 5})}
	b := Army{mustUnit(t, "b", 5, map[string]float64{"a": 5})}

	res, err := Simulate(a, b, Strategy{Kind: EfficiencyOnly}, Strategy{Kind: EfficiencyOnly}, util.New(2), Config{})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	// Sequential resolution would leave one side a winner; simultaneous
	// resolution kills both in the same round.
	if res.Outcome != OutcomeMutualDestruction || res.Rounds != 1 {
		t.Fatalf("outcome=%v rounds=%d, want mutual destruction in round 1", res.Outcome, res.Rounds)
	}
}

func TestSimulateStalemateHitsRoundCap(t *testing.T) {
	// Neither side has an efficiency entry for the other: every attacker
	// skips its turn and the battle cannot progress.
	a := Army{mustUnit(t, "a", 5, map[string]float64{"a": 5})}
	b := Army{mustUnit(t, "b", 5, map[string]float64{"b": 5})}

	res, err := Simulate(a, b, Strategy{Kind: EfficiencyOnly}, Strategy{Kind: EfficiencyOnly}, util.New(2), Config{MaxRounds: 10})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if res.Outcome != OutcomeRunning || res.Rounds != 10 {
		t.Fatalf("outcome=%v rounds=%d, want non-terminal cutoff at 10", res.Outcome, res.Rounds)
	}
	if len(res.SurvivorsA) != 1 || len(res.SurvivorsB) != 1 {
		t.Fatalf("stalemate must not produce casualties")
	}
}

func TestSimulateOneSidedWin(t *testing.T) {
	a := Army{mustUnit(t, "a", 5, map[string]float64{"b": 5})}
	b := Army{mustUnit(t, "b", 5, nil)} // defenseless

	res, err := Simulate(a, b, Strategy{Kind: EfficiencyOnly}, Strategy{Kind: EfficiencyOnly}, util.New(2), Config{})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if res.Outcome != OutcomeArmyAWins || res.Rounds != 1 {
		t.Fatalf("outcome=%v rounds=%d, want army A win in round 1", res.Outcome, res.Rounds)
	}
}

func TestTraceEventsCarryRoundAndAttacker(t *testing.T) {
	a, b := testArmies(t)
	var events []Event
	cfg := Config{
		MaxRounds: 3,
		Trace:     func(ev Event) { events = append(events, ev) },
	}
	res, err := Simulate(a, b, Strategy{Kind: EfficiencyOnly}, Strategy{Kind: EfficiencyOnly}, util.New(4), cfg)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("expected trace events")
	}

	roundEnds := 0
	for _, ev := range events {
		if ev.Round < 1 || ev.Round > res.Rounds {
			t.Fatalf("event %+v outside round range 1..%d", ev, res.Rounds)
		}
		switch ev.Type {
		case "RoundEnd":
			roundEnds++
		case "Hit", "Kill":
			if _, ok := ev.Payload["attacker"]; !ok {
				t.Fatalf("allocation event missing attacker: %+v", ev)
			}
		default:
			t.Fatalf("unexpected event type %q", ev.Type)
		}
	}
	if roundEnds != res.Rounds {
		t.Fatalf("round end events = %d, want %d", roundEnds, res.Rounds)
	}
}
