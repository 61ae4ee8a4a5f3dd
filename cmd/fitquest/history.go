package fitquest

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest-cli/internal/model"
	"github.com/fitquest/fitquest-cli/internal/service"
	"github.com/fitquest/fitquest-cli/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect per-day metric history",
}

var (
	historyMetric string
	historyLimit  int
	historyDays   int
)

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries for a metric, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			entries, err := service.History(kv, model.MetricKind(historyMetric))
			if err != nil {
				return err
			}
			if historyLimit > 0 && len(entries) > historyLimit {
				entries = entries[:historyLimit]
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tVALUE\tNOTE")
			for _, e := range entries {
				fmt.Fprintf(out, "%s\t%.1f\t%s\n", e.Date, e.Value, e.Note)
			}
			return nil
		})
	},
}

var historyAvgCmd = &cobra.Command{
	Use:   "avg",
	Short: "Average of a metric over a trailing window",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			avg, err := service.Average(kv, model.MetricKind(historyMetric), historyDays, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Average %s over %d days: %.1f\n", historyMetric, historyDays, avg)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyAvgCmd)

	historyCmd.PersistentFlags().StringVar(&historyMetric, "metric", "calories", "Metric (calories, protein, water, weight)")
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 0, "Maximum entries to show")
	historyAvgCmd.Flags().IntVar(&historyDays, "days", 7, "Trailing window in days")
}
