package fitquest

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest-cli/internal/model"
	"github.com/fitquest/fitquest-cli/internal/service"
	"github.com/fitquest/fitquest-cli/internal/store"
)

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Daily and weekly missions",
}

var missionResetAll bool

var missionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List current missions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			p, err := service.LoadProfile(kv)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printMissions := func(header string, missions []model.Mission) {
				fmt.Fprintln(out, header)
				for _, m := range missions {
					status := " "
					if m.Completed {
						status = "x"
					}
					fmt.Fprintf(out, "[%s] %s (+%d XP)  %s\n", status, m.Title, m.XP, m.ID)
				}
			}
			printMissions("Daily:", p.DailyMissions)
			printMissions("Weekly:", p.WeeklyMissions)
			return nil
		})
	},
}

var missionGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate daily and weekly missions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			if err := service.GenerateMissions(kv, time.Now()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Missions generated")
			return nil
		})
	},
}

var missionCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Scan missions and complete the ones whose target is reached",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			any, err := service.CheckAndCompleteMissions(kv, time.Now())
			if err != nil {
				return err
			}
			if any {
				fmt.Fprintln(cmd.OutOrStdout(), "Mission completed!")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No missions completed")
			}
			return nil
		})
	},
}

var missionCompleteCmd = &cobra.Command{
	Use:   "complete <mission-id>",
	Short: "Complete an activity mission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			res, err := service.CompleteDaily(kv, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Mission completed! Level %d, %d XP\n", res.NewLevel, res.NewXP)
			if res.LevelUp {
				fmt.Fprintln(cmd.OutOrStdout(), "Level up!")
			}
			return nil
		})
	},
}

var missionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Regenerate missions and zero today's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			var err error
			if missionResetAll {
				err = service.ResetAllMissions(kv, time.Now())
			} else {
				err = service.ResetDailyMissions(kv, time.Now())
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Missions reset")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(missionCmd)
	missionCmd.AddCommand(missionListCmd, missionGenerateCmd, missionCheckCmd, missionCompleteCmd, missionResetCmd)

	missionResetCmd.Flags().BoolVar(&missionResetAll, "all", false, "Also regenerate weekly missions")
}
