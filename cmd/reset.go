package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a user's learning data",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		userID := resolveUser(cmd)
		if err := st.ResetUser(cmd.Context(), userID); err != nil {
			return err
		}
		fmt.Printf("Learning data for user %s deleted.\n", userID)
		return nil
	},
}
