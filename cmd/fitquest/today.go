package fitquest

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest-cli/internal/service"
	"github.com/fitquest/fitquest-cli/internal/store"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's progress against your goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			p, err := service.LoadProfile(kv)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", time.Now().Format("2006-01-02"))
			fmt.Fprintf(out, "Calories: %d/%d kcal\n", p.DailyProgress.Calories, p.Goals.CalorieGoal)
			fmt.Fprintf(out, "Macros: P %.1f/%dg | C %.1f/%dg | F %.1f/%dg\n",
				p.DailyProgress.ProteinG, p.Goals.ProteinGoal,
				p.DailyProgress.CarbsG, p.Goals.CarbGoal,
				p.DailyProgress.FatG, p.Goals.FatGoal)
			fmt.Fprintf(out, "Water: %d/%d ml\n", p.DailyWaterIntake, p.Goals.WaterGoal)
			fmt.Fprintf(out, "Burned: %d/%d kcal\n", p.DailyProgress.BurnedCalories, p.Goals.BurnCalorieGoal)

			done := 0
			for _, m := range p.DailyMissions {
				if m.Completed {
					done++
				}
			}
			fmt.Fprintf(out, "Missions: %d/%d | Level %d (%d XP)\n", done, len(p.DailyMissions), p.Level, p.ExperiencePoints)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
