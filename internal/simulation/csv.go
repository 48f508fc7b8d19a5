package simulation

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteSeriesCSV writes the per-year series to a CSV file, one row per
// simulated year.
func WriteSeriesCSV(path string, rows []YearRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"available_for_investment",
		"investments",
		"net_worth",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.AvailableForInvestment),
			fmtFloat(r.Investments),
			fmtFloat(r.NetWorth),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
