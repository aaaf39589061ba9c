package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jakechorley/staff-rota/pkg/core/services"
)

// ProjectHoursCmd creates the projectHours command
func ProjectHoursCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "projectHours <year> <month>",
		Short: "Project each staff member's hours for a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be a number: %w", err)
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("month must be a number: %w", err)
			}

			report, err := services.ProjectHours(app.Ctx, app.Database, app.Cfg, app.Logger, year, month)
			if err != nil {
				return err
			}

			fmt.Printf("\n%s %d: %d working weekdays\n", report.Month, report.Year, report.Weekdays)
			for _, d := range report.ClosedDates {
				fmt.Printf("  closed %s\n", d.Format("Mon 2 Jan"))
			}
			fmt.Println()

			if len(report.Projections) == 0 {
				fmt.Println("No staff on the roster.")
				return nil
			}

			fmt.Println(renderProjections(report))
			return nil
		},
	}
}
