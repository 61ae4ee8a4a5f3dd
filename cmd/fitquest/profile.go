package fitquest

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest-cli/internal/model"
	"github.com/fitquest/fitquest-cli/internal/service"
	"github.com/fitquest/fitquest-cli/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var (
	profileGender   string
	profileWeight   float64
	profileHeight   float64
	profileAge      int
	profileActivity string
	profileGoal     string
	profileRecalc   bool
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set biometric and activity fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			_, err := service.SetBiometrics(kv, service.BiometricsInput{
				Gender:        model.Gender(profileGender),
				WeightKg:      profileWeight,
				HeightCm:      profileHeight,
				Age:           profileAge,
				ActivityLevel: model.ActivityLevel(profileActivity),
				WeightGoal:    model.WeightGoal(profileGoal),
			})
			if err != nil {
				return err
			}
			if profileRecalc {
				logger := newLogger()
				defer logger.Sync()
				if _, err := service.RefreshGoals(kv, logger); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile, level, and XP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			p, err := service.LoadProfile(kv)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Gender: %s | Weight: %.1f kg | Height: %.1f cm | Age: %d\n", orDash(string(p.Gender)), p.WeightKg, p.HeightCm, p.Age)
			fmt.Fprintf(out, "Activity: %s | Goal: %s\n", orDash(string(p.ActivityLevel)), orDash(string(p.WeightGoal)))
			fmt.Fprintf(out, "Level %d | %d/%d XP | Streak: %d days\n", p.Level, p.ExperiencePoints, p.Level*100, p.StreakDays)
			return nil
		})
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender (male, female, other)")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level (sedentary, light, moderate, active, very_active)")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Weight goal (lose, maintain, gain)")
	profileSetCmd.Flags().BoolVar(&profileRecalc, "recalc", false, "Recalculate nutrition goals after updating")
}
