// Package roster builds armies out of config-defined unit types.
package roster

import (
	"fmt"
	"sort"

	"skirmish/internal/combat"
	"skirmish/internal/config"
)

// Build constructs an army from a force composition (type id -> headcount).
// Types are instantiated in sorted id order so the base army order is
// deterministic; the engine shuffles per round on top of it.
func Build(defs *config.UnitTypesConfig, force map[string]int) (combat.Army, error) {
	index := defs.ByID()

	ids := make([]string, 0, len(force))
	for id := range force {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var army combat.Army
	for _, id := range ids {
		def, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("unknown unit type %q", id)
		}
		count := force[id]
		if count < 0 {
			return nil, fmt.Errorf("negative count %d for unit type %q", count, id)
		}
		for i := 0; i < count; i++ {
			u, err := combat.NewUnit(def.ID, def.Health, def.Efficiency)
			if err != nil {
				return nil, err
			}
			army = append(army, u)
		}
	}
	return army, nil
}
