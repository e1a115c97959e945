package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"skirmish/internal/combat"
	"skirmish/internal/config"
	"skirmish/internal/report"
	"skirmish/internal/roster"
	"skirmish/internal/util"
)

type envDefaults struct {
	ConfigDir string `env:"SKIRMISH_CONFIG" envDefault:"assets"`
	Seed      int64  `env:"SKIRMISH_SEED" envDefault:"12345"`
	Workers   int    `env:"SKIRMISH_WORKERS" envDefault:"8"`
}

func main() {
	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		fatal(err)
	}

	var cfgDir, out, nameA, nameB string
	var seed int64
	var matrix, logEvents bool
	var workers, maxRounds int
	flag.StringVar(&cfgDir, "config", defaults.ConfigDir, "config dir")
	flag.StringVar(&out, "out", "out.json", "output file")
	flag.StringVar(&nameA, "a", "efficiency", "army A strategy")
	flag.StringVar(&nameB, "b", "efficiency", "army B strategy")
	flag.Int64Var(&seed, "seed", defaults.Seed, "rng seed")
	flag.BoolVar(&matrix, "matrix", false, "sweep every strategy pairing")
	flag.BoolVar(&logEvents, "log", false, "log allocation events")
	flag.IntVar(&workers, "workers", defaults.Workers, "matrix sweep workers")
	flag.IntVar(&maxRounds, "rounds", 0, "round cap override (0 = scenario value)")
	flag.Parse()

	unitDefs, scenario, err := config.Load(cfgDir)
	if err != nil {
		fatal(err)
	}

	engineCfg := combat.Config{
		ScaleEfficiencyByHealth: scenario.ScaleEfficiencyByHealth,
		MaxRounds:               scenario.MaxRounds,
	}
	if maxRounds > 0 {
		engineCfg.MaxRounds = maxRounds
	}

	build := func() (combat.Army, combat.Army, error) {
		armyA, err := roster.Build(unitDefs, scenario.ForceA)
		if err != nil {
			return nil, nil, err
		}
		armyB, err := roster.Build(unitDefs, scenario.ForceB)
		if err != nil {
			return nil, nil, err
		}
		return armyA, armyB, nil
	}

	if matrix {
		m, err := report.RunMatrix(build, combat.Strategies(), seed, engineCfg, workers)
		if err != nil {
			fatal(err)
		}
		if err := os.WriteFile(out, report.MarshalPretty(m), 0644); err != nil {
			fatal(err)
		}
		fmt.Print(m.Format())
		fmt.Printf("Matrix sweep of %q done (%d pairings) -> %s\n",
			scenario.Name, len(m.Strategies)*len(m.Strategies), out)
		return
	}

	stratA, err := combat.StrategyByName(nameA)
	if err != nil {
		fatal(err)
	}
	stratB, err := combat.StrategyByName(nameB)
	if err != nil {
		fatal(err)
	}
	armyA, armyB, err := build()
	if err != nil {
		fatal(err)
	}

	var events []combat.Event
	capture := func(ev combat.Event) { events = append(events, ev) }
	if logEvents {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fatal(err)
		}
		defer func() { _ = logger.Sync() }()
		sink := report.ZapTrace(logger)
		engineCfg.Trace = func(ev combat.Event) {
			capture(ev)
			sink(ev)
		}
	} else {
		engineCfg.Trace = capture
	}

	res, err := combat.Simulate(armyA, armyB, stratA, stratB, util.New(seed), engineCfg)
	if err != nil {
		fatal(err)
	}

	summary := report.BuildSummary(scenario.Name, stratA, stratB, seed, res, events)
	if err := os.WriteFile(out, report.MarshalPretty(summary), 0644); err != nil {
		fatal(err)
	}
	fmt.Print(report.RenderHistory(res.History))
	fmt.Printf("%s vs %s: %s after %d rounds (%d vs %d alive) -> %s\n",
		stratA.Name(), stratB.Name(), res.Outcome, res.Rounds,
		len(res.SurvivorsA), len(res.SurvivorsB), out)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
