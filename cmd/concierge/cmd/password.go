package cmd

import (
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Password recovery and change",
}

var forgotCmd = &cobra.Command{
	Use:   "forgot <email>",
	Short: "Request a password-reset email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		resp, err := a.mgr.ForgotPassword(cmd.Context(), strfmt.Email(args[0]))
		if err != nil {
			return err
		}
		fmt.Println(resp.Text())
		return nil
	},
}

var validateTokenCmd = &cobra.Command{
	Use:   "validate-token <token>",
	Short: "Check whether a reset token is still usable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		valid, err := a.mgr.ValidateResetToken(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !valid {
			return fmt.Errorf("reset token is invalid or expired; request a new link")
		}
		fmt.Println("Reset token is valid")
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <token> <new-password>",
	Short: "Set a new password with a reset token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		resp, err := a.mgr.ResetPassword(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(resp.Text())
		return nil
	},
}

var changeCmd = &cobra.Command{
	Use:   "change <token> <new-password>",
	Short: "Change the password of the authenticated account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireAuth(); err != nil {
			return err
		}
		resp, err := a.api.ChangePassword(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(resp.Text())
		return nil
	},
}

func init() {
	passwordCmd.AddCommand(forgotCmd, validateTokenCmd, resetCmd, changeCmd)
	rootCmd.AddCommand(passwordCmd)
}
