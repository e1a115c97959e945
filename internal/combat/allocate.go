package combat

// AllocateDamage spends one attacker's full attack power against a ranked
// target list, updating the side-shared allocated/provisional maps.
//
// While budget remains, the first target in rank order whose provisional
// health fits inside the budget takes a clean finishing blow (exactly its
// remaining provisional health, no overkill) and is dropped from the list;
// leftover budget cascades to the next candidate. Once nothing is killable
// the whole remainder lands on the single top-ranked target, so damage is
// never split across multiple surviving targets. Both maps are mutated and
// the allocated map is returned.
func AllocateDamage(ranked []*Unit, power float64, allocated, provisional map[*Unit]float64, trace TraceFunc) map[*Unit]float64 {
	remaining := power
	for remaining > 0 && len(ranked) > 0 {
		finish := -1
		for i, target := range ranked {
			if provisional[target] <= remaining {
				finish = i
				break
			}
		}
		if finish >= 0 {
			target := ranked[finish]
			blow := provisional[target]
			allocated[target] += blow
			provisional[target] = 0
			remaining -= blow
			ranked = append(ranked[:finish], ranked[finish+1:]...)
			trace.emit(Event{Type: "Kill", Payload: map[string]any{
				"target": target.Type, "dmg": blow, "left": remaining,
			}})
			continue
		}
		target := ranked[0]
		allocated[target] += remaining
		provisional[target] -= remaining
		trace.emit(Event{Type: "Hit", Payload: map[string]any{
			"target": target.Type, "dmg": remaining, "hp": provisional[target],
		}})
		remaining = 0
	}
	return allocated
}
