package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/peacelens/transcript-scorer/internal/compare"
)

var (
	compareRunNumber  int
	compareMinSamples int
	compareNoColor    bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare persisted scores against the human gold standard",
	Long: `Compare the scores persisted for a run against the human ratings and
print per-method agreement metrics. The method with the highest Pearson
correlation per dimension is highlighted.

Examples:
  goldrun compare
  goldrun compare --run-number 2 --min-samples 5`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tk, err := setup(cmd)
		if err != nil {
			return err
		}
		defer tk.close()

		pairs, err := tk.repo.GetMethodGoldPairs(cmd.Context(), compareRunNumber)
		if err != nil {
			return fmt.Errorf("load gold pairs: %w", err)
		}
		if len(pairs) == 0 {
			return fmt.Errorf("no scored gold pairs at run %d; run goldrun run first", compareRunNumber)
		}

		metrics := compare.Compute(pairs)
		best := compare.BestByDimension(metrics, compareMinSamples)

		return writeMetricsTable(metrics, best)
	},
}

func init() {
	compareCmd.Flags().IntVar(&compareRunNumber, "run-number", 1, "run number to compare")
	compareCmd.Flags().IntVar(&compareMinSamples, "min-samples", 2, "minimum complete pairs for a method to win a dimension")
	compareCmd.Flags().BoolVar(&compareNoColor, "no-color", false, "disable colored output")
}

func writeMetricsTable(metrics []compare.Metrics, best map[string]compare.Metrics) error {
	table := tablewriter.NewWriter(os.Stdout)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Method", "Dimension", "N", "Skipped", "Pearson", "Spearman", "MAE", "RMSE"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	green := fmt.Sprint
	if !compareNoColor {
		green = color.New(color.FgGreen).SprintFunc()
	}

	var data [][]string
	for _, m := range metrics {
		row := []string{
			m.Method,
			m.Dimension,
			strconv.Itoa(m.N),
			strconv.Itoa(m.Unavailable),
			fmtStat(m.PearsonR),
			fmtStat(m.SpearmanR),
			fmtStat(m.MAE),
			fmtStat(m.RMSE),
		}
		if winner, ok := best[m.Dimension]; ok && winner.Method == m.Method {
			for i := range row {
				row[i] = green(row[i])
			}
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Printf("Compared %d method/dimension cells at run %d; best rows need >= %d complete pairs\n",
		len(metrics), compareRunNumber, compareMinSamples)
	return err
}

// fmtStat renders a metric value, showing a dash when too few complete
// pairs existed to compute it.
func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
