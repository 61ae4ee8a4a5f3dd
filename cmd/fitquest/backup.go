package fitquest

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest-cli/internal/model"
	"github.com/fitquest/fitquest-cli/internal/service"
	"github.com/fitquest/fitquest-cli/internal/store"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export, import, and schedule backups",
}

var (
	backupOut         string
	backupFile        string
	backupAll         bool
	backupUserData    bool
	backupMealPlan    bool
	backupRecipes     bool
	backupMeals       bool
	backupCustomFoods bool
	backupEnable      bool
	backupDisable     bool
	backupFrequency   string
)

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a snapshot of all data to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			out := backupOut
			if out == "" {
				dbFile, err := resolveDBPath()
				if err != nil {
					return err
				}
				dir := filepath.Join(filepath.Dir(dbFile), "backups")
				out = filepath.Join(dir, fmt.Sprintf("fitquest-%s.json", time.Now().Format("20060102-150405")))
			}
			info, err := service.ExportSnapshot(kv, out, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported snapshot: %s\n", info.Path)
			fmt.Fprintf(cmd.OutOrStdout(), "Checksum: %s\n", info.Checksum)
			return nil
		})
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Selectively import a snapshot file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if backupFile == "" {
			return fmt.Errorf("--file is required")
		}
		opts := service.ImportOptions{
			ImportUserData:    backupUserData || backupAll,
			ImportMealPlan:    backupMealPlan || backupAll,
			ImportRecipes:     backupRecipes || backupAll,
			ImportMeals:       backupMeals || backupAll,
			ImportCustomFoods: backupCustomFoods || backupAll,
		}
		return withStore(func(kv store.KV) error {
			res, err := service.ImportSnapshotFile(kv, backupFile, opts)
			if err != nil {
				return err
			}
			if !res.Success {
				return fmt.Errorf("import failed: %s", res.Message)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Import completed")
			return nil
		})
	},
}

var backupAutoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Configure or run automatic backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			settings, err := service.LoadBackupSettings(kv)
			if err != nil {
				return err
			}
			if backupEnable {
				settings.AutoBackupEnabled = true
			}
			if backupDisable {
				settings.AutoBackupEnabled = false
			}
			if backupFrequency != "" {
				settings.BackupFrequency = model.BackupFrequency(backupFrequency)
			}
			if err := service.SaveBackupSettings(kv, settings); err != nil {
				return err
			}
			logger := newLogger()
			defer logger.Sync()
			ran, err := service.RunAutoBackup(kv, logger, time.Now())
			if err != nil {
				return err
			}
			if ran {
				fmt.Fprintln(cmd.OutOrStdout(), "Automatic backup created")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No backup due")
			}
			return nil
		})
	},
}

var backupStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backup settings and schedule state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv store.KV) error {
			settings, err := service.LoadBackupSettings(kv)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Auto backup: %v | Frequency: %s\n", settings.AutoBackupEnabled, settings.BackupFrequency)
			if settings.LastBackupDate == "" {
				fmt.Fprintln(out, "Last backup: never")
			} else {
				fmt.Fprintf(out, "Last backup: %s\n", settings.LastBackupDate)
			}
			fmt.Fprintf(out, "Backup due: %v\n", service.ShouldCreateBackup(settings, time.Now()))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupExportCmd, backupImportCmd, backupAutoCmd, backupStatusCmd)

	backupExportCmd.Flags().StringVar(&backupOut, "out", "", "Snapshot output file path")
	backupImportCmd.Flags().StringVar(&backupFile, "file", "", "Snapshot .json file path")
	backupImportCmd.Flags().BoolVar(&backupAll, "all", false, "Import every category")
	backupImportCmd.Flags().BoolVar(&backupUserData, "user-data", false, "Import profile data")
	backupImportCmd.Flags().BoolVar(&backupMealPlan, "meal-plan", false, "Import the meal plan")
	backupImportCmd.Flags().BoolVar(&backupRecipes, "recipes", false, "Import saved and user recipes")
	backupImportCmd.Flags().BoolVar(&backupMeals, "meals", false, "Import logged meals")
	backupImportCmd.Flags().BoolVar(&backupCustomFoods, "custom-foods", false, "Import custom foods")
	backupAutoCmd.Flags().BoolVar(&backupEnable, "enable", false, "Enable automatic backups")
	backupAutoCmd.Flags().BoolVar(&backupDisable, "disable", false, "Disable automatic backups")
	backupAutoCmd.Flags().StringVar(&backupFrequency, "frequency", "", "Backup frequency (daily, weekly, monthly)")
}
