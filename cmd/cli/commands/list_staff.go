package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/staff-rota/pkg/core/services"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff",
		Short: "List all staff on the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := services.ListStaff(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d staff:\n\n", len(staff))
			if len(staff) > 0 {
				fmt.Println(renderStaff(staff))
			}

			return nil
		},
	}
}
