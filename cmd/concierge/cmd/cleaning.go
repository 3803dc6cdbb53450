package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cleaningCmd = &cobra.Command{
	Use:   "cleaning",
	Short: "List your assigned cleaning tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireAuth(); err != nil {
			return err
		}
		user, _ := a.mgr.CurrentUser()
		if user == nil || user.ID == 0 {
			return fmt.Errorf("stored profile has no user id; log in again")
		}
		tasks, err := a.api.CleaningTasksByUser(cmd.Context(), user.ID)
		if err != nil {
			return err
		}
		return printJSON(tasks)
	},
}

func init() {
	rootCmd.AddCommand(cleaningCmd)
}
