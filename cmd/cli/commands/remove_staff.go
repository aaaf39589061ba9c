package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/staff-rota/pkg/core/services"
)

// RemoveStaffCmd creates the removeStaff command
func RemoveStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeStaff <name>",
		Short: "Remove a staff member from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := services.RemoveStaff(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Removed %s\n\n", staff.Name)
			return nil
		},
	}
}
