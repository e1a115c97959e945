// Package report holds the sweep harness and result presentation around the
// combat engine: the strategy-matrix runner, per-battle summaries, the
// survivor history chart and the zap trace sink.
package report

import (
	"fmt"
	"strings"
	"sync"

	"skirmish/internal/combat"
	"skirmish/internal/util"
)

// Cell is one sweep entry: the row strategy commanding army A against the
// column strategy commanding army B.
type Cell struct {
	StrategyA  string `json:"strategy_a"`
	StrategyB  string `json:"strategy_b"`
	Rounds     int    `json:"rounds"`
	SurvivorsA int    `json:"survivors_a"`
	SurvivorsB int    `json:"survivors_b"`
	Outcome    string `json:"outcome"`
}

// Matrix is the full policy-by-policy sweep result.
type Matrix struct {
	Strategies []string `json:"strategies"`
	Cells      [][]Cell `json:"cells"`
}

// RunMatrix simulates every strategy pairing. build must return fresh armies
// on each call, since battles consume them. Each cell derives its own rng
// seed from the base seed, so the entire sweep is reproducible regardless of
// worker scheduling.
func RunMatrix(build func() (combat.Army, combat.Army, error), strategies []combat.Strategy, seed int64, cfg combat.Config, workers int) (*Matrix, error) {
	if workers <= 0 {
		workers = 8
	}
	n := len(strategies)
	m := &Matrix{
		Strategies: make([]string, n),
		Cells:      make([][]Cell, n),
	}
	for i, s := range strategies {
		m.Strategies[i] = s.Name()
		m.Cells[i] = make([]Cell, n)
	}

	type job struct{ i, j int }
	jobs := make(chan job, n*n)
	var mu sync.Mutex
	var firstErr error
	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jb := range jobs {
				armyA, armyB, err := build()
				if err == nil {
					rng := util.New(seed + int64(jb.i)*7919 + int64(jb.j))
					var res combat.Result
					res, err = combat.Simulate(armyA, armyB, strategies[jb.i], strategies[jb.j], rng, cfg)
					if err == nil {
						mu.Lock()
						m.Cells[jb.i][jb.j] = Cell{
							StrategyA:  strategies[jb.i].Name(),
							StrategyB:  strategies[jb.j].Name(),
							Rounds:     res.Rounds,
							SurvivorsA: len(res.SurvivorsA),
							SurvivorsB: len(res.SurvivorsB),
							Outcome:    res.Outcome.String(),
						}
						mu.Unlock()
						continue
					}
				}
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			jobs <- job{i: i, j: j}
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return m, nil
}

// Format renders the matrix as a fixed-width table. Columns are numbered and
// resolved in a legend below, since full strategy names would make a 10x10
// table unreadable. Cells read "survivorsA:survivorsB".
func (m *Matrix) Format() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-22s", "A \\ B"))
	for j := range m.Strategies {
		b.WriteString(fmt.Sprintf("%8d", j+1))
	}
	b.WriteString("\n")
	for i, name := range m.Strategies {
		b.WriteString(fmt.Sprintf("%2d %-19s", i+1, name))
		for j := range m.Strategies {
			c := m.Cells[i][j]
			b.WriteString(fmt.Sprintf("%8s", fmt.Sprintf("%d:%d", c.SurvivorsA, c.SurvivorsB)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\ncolumns: ")
	for j, name := range m.Strategies {
		if j > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%d=%s", j+1, name))
	}
	b.WriteString("\n")
	return b.String()
}
