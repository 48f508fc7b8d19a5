package main

import (
	"flag"
	"fmt"

	"networth-sim/internal/config"
	"networth-sim/internal/format"
	"networth-sim/internal/model"
	"networth-sim/internal/simulation"
)

// Demo:
// - Build a household with an apartment under loan, a salary and living expenses
// - Schedule a rental purchase, a rent income and a later sale
// - Run the projection to show how models fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML scenario config (optional)")
	years := flag.Int("years", 20, "Number of years to simulate")
	outCSV := flag.String("out", "", "Optional path to write the series CSV (e.g. results/series.csv)")
	flag.Parse()

	var sim *simulation.Simulation
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		sim, err = cfg.Scenario.NewSimulation()
		if err != nil {
			panic(err)
		}
	} else {
		sim = defaultHousehold()
	}

	sim.Run(*years)
	res := sim.Result()

	fmt.Printf("Simulated %d years\n\n", len(res.Rows))
	fmt.Printf("%-6s %-26s %-18s %-18s\n", "year", "available for investment", "investments", "net worth")
	for _, r := range res.Rows {
		fmt.Printf("%-6d %-26s %-18s %-18s\n",
			r.Year,
			format.EUR(r.AvailableForInvestment),
			format.EUR(r.Investments),
			format.EUR(r.NetWorth),
		)
	}

	if *outCSV != "" {
		if err := simulation.WriteSeriesCSV(*outCSV, res.Rows); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Final net worth=%s  Final investments=%s\n",
		format.EUR(res.FinalNetWorth), format.EUR(res.FinalInvestments))
}

func defaultHousehold() *simulation.Simulation {
	home := model.NewProperty("Main apartment", 250000, 0, 150000, 1200, 1800, model.Loan{
		Amount:        150000,
		DurationYears: 15,
		AnnualRate:    0.02,
	})

	networth := &model.NetWorth{
		Cash:        0,
		Investments: 60000,
		Properties:  []model.Property{home},
	}
	incomes := []model.Income{{Name: "Salary", YearlyAmount: 45000}}
	expenses := []model.Expense{{Name: "Living expenses", YearlyAmount: 28000}}

	rental := model.NewProperty("Studio rental", 120000, 9000, 0, 600, 900, model.Loan{})
	events := []simulation.Event{
		simulation.BuyProperty{At: 3, Property: rental},
		simulation.AddIncome{At: 4, Income: model.Income{Name: "Rent", YearlyAmount: 7200}},
		simulation.SellProperty{At: 15, Name: "Studio rental"},
		simulation.RemoveIncome{At: 15, Name: "Rent"},
	}

	return simulation.New(networth, incomes, expenses, events, 0.03)
}
