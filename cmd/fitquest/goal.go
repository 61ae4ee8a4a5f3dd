package fitquest

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest-cli/internal/model"
	"github.com/fitquest/fitquest-cli/internal/service"
	"github.com/fitquest/fitquest-cli/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show or recalculate nutrition goals",
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current nutrition goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			p, err := service.LoadProfile(kv)
			if err != nil {
				return err
			}
			printGoals(cmd, p.Goals)
			return nil
		})
	},
}

var goalRecalcCmd = &cobra.Command{
	Use:   "recalc",
	Short: "Recalculate goals from current biometrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			logger := newLogger()
			defer logger.Sync()
			p, err := service.RefreshGoals(kv, logger)
			if err != nil {
				return err
			}
			printGoals(cmd, p.Goals)
			return nil
		})
	},
}

func printGoals(cmd *cobra.Command, g model.NutritionGoals) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Calories: %d kcal\n", g.CalorieGoal)
	fmt.Fprintf(out, "Macros: P %dg | C %dg | F %dg\n", g.ProteinGoal, g.CarbGoal, g.FatGoal)
	fmt.Fprintf(out, "Water: %d ml\n", g.WaterGoal)
	fmt.Fprintf(out, "Burn: %d kcal\n", g.BurnCalorieGoal)
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalShowCmd, goalRecalcCmd)
}
