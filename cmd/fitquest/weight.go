package fitquest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest-cli/internal/model"
	"github.com/fitquest/fitquest-cli/internal/service"
	"github.com/fitquest/fitquest-cli/internal/store"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight",
}

var (
	weightNote  string
	weightLimit int
)

var weightLogCmd = &cobra.Command{
	Use:   "log <kg>",
	Short: "Record today's weight in kg",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kg, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		return withStore(func(kv store.KV) error {
			if err := service.LogWeight(kv, kg, time.Now(), weightNote); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f kg\n", kg)
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show weight history, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			entries, err := service.History(kv, model.MetricWeight)
			if err != nil {
				return err
			}
			if weightLimit > 0 && len(entries) > weightLimit {
				entries = entries[:weightLimit]
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tKG\tNOTE")
			for _, e := range entries {
				fmt.Fprintf(out, "%s\t%.1f\t%s\n", e.Date, e.Value, e.Note)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightLogCmd, weightListCmd)

	weightLogCmd.Flags().StringVar(&weightNote, "note", "", "Optional note")
	weightListCmd.Flags().IntVar(&weightLimit, "limit", 0, "Maximum entries to show")
}
