package fitquest

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest-cli/internal/model"
	"github.com/fitquest/fitquest-cli/internal/service"
	"github.com/fitquest/fitquest-cli/internal/store"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and complete meals",
}

var (
	mealName     string
	mealType     string
	mealCalories int
	mealProtein  float64
	mealCarbs    float64
	mealFat      float64
	mealListDate string
)

var mealLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a meal for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			rec, err := service.LogMeal(kv, service.MealInput{
				Name:     mealName,
				Type:     model.MealType(mealType),
				Calories: mealCalories,
				ProteinG: mealProtein,
				CarbsG:   mealCarbs,
				FatG:     mealFat,
			}, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%s): %s\n", rec.Name, rec.Type, rec.ID)
			return nil
		})
	},
}

var mealCompleteCmd = &cobra.Command{
	Use:   "complete <meal-id>",
	Short: "Mark a logged meal as eaten",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			missionDone, err := service.CompleteMeal(kv, args[0], time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Meal completed")
			if missionDone {
				fmt.Fprintln(cmd.OutOrStdout(), "Mission completed!")
			}
			return nil
		})
	},
}

var mealUnlockCmd = &cobra.Command{
	Use:   "unlock <meal-id>",
	Short: "Revert a completed meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			if err := service.UnlockMeal(kv, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Meal unlocked")
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := mealListDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		return withStore(func(kv store.KV) error {
			meals, err := service.MealsForDate(kv, date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tTYPE\tNAME\tKCAL\tDONE")
			for _, m := range meals {
				done := ""
				if m.Completed {
					done = "x"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%d\t%s\n", m.ID, m.Type, m.Name, m.Calories, done)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealLogCmd, mealCompleteCmd, mealUnlockCmd, mealListCmd)

	mealLogCmd.Flags().StringVar(&mealName, "name", "", "Meal name")
	mealLogCmd.Flags().StringVar(&mealType, "type", "", "Meal type (breakfast, lunch, dinner, snack)")
	mealLogCmd.Flags().IntVar(&mealCalories, "calories", 0, "Calories")
	mealLogCmd.Flags().Float64Var(&mealProtein, "protein", 0, "Protein grams")
	mealLogCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "Carb grams")
	mealLogCmd.Flags().Float64Var(&mealFat, "fat", 0, "Fat grams")
	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "Date YYYY-MM-DD (default today)")
}
