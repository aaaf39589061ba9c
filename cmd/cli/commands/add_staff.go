package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jakechorley/staff-rota/pkg/core/services"
)

// AddStaffCmd creates the addStaff command
func AddStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addStaff <name> <contracted_hours>",
		Short: "Add a staff member to the roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("contracted_hours must be a number: %w", err)
			}

			staff, err := services.AddStaff(app.Ctx, app.Database, app.Logger, args[0], hours)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Added %s (%s hours/week)\n", staff.Name, formatHours(staff.ContractedHours))
			fmt.Printf("ID: %s\n\n", staff.ID)
			return nil
		},
	}
}
