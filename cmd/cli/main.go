package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"networth-sim/internal/config"
	"networth-sim/internal/format"
	"networth-sim/internal/simulation"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/scenarios/basic.yaml --out results/series.csv")
	fmt.Println("  cli compare --config scenarios.yaml --years 30")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate prints one row per projected year and optionally writes CSV")
	fmt.Println("  - compare runs every scenario in a multi-scenario file over a shared horizon")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	outPath := fs.String("out", "", "Optional output CSV path")
	years := fs.Int("years", 0, "Optional: override the scenario's horizon (1-50)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	sc := cfg.Scenario
	if *years > 0 {
		sc.Years = *years
		if err := sc.Validate(); err != nil {
			fatal(err)
		}
	}

	sim, err := sc.NewSimulation()
	if err != nil {
		fatal(err)
	}
	sim.Run(sc.Years)
	res := sim.Result()

	printSeries(res.Rows)
	fmt.Printf("\nFinal net worth: %s  Final investments: %s\n",
		format.EUR(res.FinalNetWorth), format.EUR(res.FinalInvestments))

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := simulation.WriteSeriesCSV(*outPath, res.Rows); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(res.Rows), *outPath)
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to multi-scenario YAML config")
	years := fs.Int("years", 0, "Optional: shared horizon override (1-50)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	if len(cfg.Scenarios) == 0 {
		fmt.Println("config has no scenarios; use a `scenarios:` file for compare")
		os.Exit(2)
	}

	fmt.Printf("%-24s %-8s %-18s %-18s\n", "scenario", "years", "final investments", "final net worth")
	for _, sc := range cfg.Scenarios {
		if *years > 0 {
			sc.Years = *years
			if err := sc.Validate(); err != nil {
				fatal(fmt.Errorf("scenario %q: %w", sc.Name, err))
			}
		}

		// Each scenario gets a freshly built simulation; nothing is shared
		// across runs.
		sim, err := sc.NewSimulation()
		if err != nil {
			fatal(fmt.Errorf("scenario %q: %w", sc.Name, err))
		}
		sim.Run(sc.Years)
		res := sim.Result()

		fmt.Printf("%-24s %-8d %-18s %-18s\n",
			sc.Name, len(res.Rows), format.EUR(res.FinalInvestments), format.EUR(res.FinalNetWorth))
	}
}

func printSeries(rows []simulation.YearRow) {
	fmt.Printf("%-6s %-26s %-18s %-18s\n", "year", "available for investment", "investments", "net worth")
	for _, r := range rows {
		fmt.Printf("%-6d %-26s %-18s %-18s\n",
			r.Year,
			format.EUR(r.AvailableForInvestment),
			format.EUR(r.Investments),
			format.EUR(r.NetWorth),
		)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
