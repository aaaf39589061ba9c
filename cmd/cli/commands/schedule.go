package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/staff-rota/pkg/core/rota"
	"github.com/jakechorley/staff-rota/pkg/core/services"
)

// ScheduleCmd creates the schedule command
func ScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate a weekly rota from the staff roster",
		Long: `Assign the roster to the weekly shift catalog.

Shifts nobody can take are listed as bank rows under the grid.
Pass --seed to reproduce a previous run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts services.ScheduleOptions
			if cmd.Flags().Changed("seed") {
				seed, err := cmd.Flags().GetUint64("seed")
				if err != nil {
					return err
				}
				opts.Seed = &seed
			}

			report, err := services.GenerateSchedule(app.Ctx, app.Database, app.Logger, opts)
			if err != nil {
				return err
			}

			result := report.Result

			fmt.Printf("\nRun ID: %s\n", report.RunID)
			if report.Seed != nil {
				fmt.Printf("Seed:   %d\n", *report.Seed)
			}
			fmt.Println()

			fmt.Println(renderSchedule(result, app.Cfg.BankDisplayRows))
			fmt.Println()
			fmt.Println(renderWeeklyHours(result))
			fmt.Println()

			fmt.Printf("Assigned %d shifts, %d in the bank\n", result.AssignedCount(), result.BankCount())
			if shown := app.Cfg.BankDisplayRows; shown > 0 {
				for _, day := range rota.Weekdays {
					if banked := len(result.Bank[day]); banked > shown {
						fmt.Printf("  %s has %d banked shifts, showing %d\n", day, banked, shown)
					}
				}
			}

			if len(report.Violations) > 0 {
				fmt.Printf("\n⚠️  %d rule violations:\n", len(report.Violations))
				for _, v := range report.Violations {
					fmt.Printf("  ✗ %s\n", v)
				}
				return fmt.Errorf("schedule failed validation with %d violations", len(report.Violations))
			}

			return nil
		},
	}

	cmd.Flags().Uint64("seed", 0, "Seed for random decisions")

	return cmd
}
