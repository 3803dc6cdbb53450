package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hotelsoft/concierge/twofactor"
)

var twofaCmd = &cobra.Command{
	Use:   "2fa",
	Short: "Two-factor authentication settings",
}

var twofaStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether 2FA is enabled for your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireAuth(); err != nil {
			return err
		}
		status, err := a.api.TwoFactorStatus(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(status)
	},
}

var twofaEnable bool

var twofaToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Enable or disable 2FA for your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireAuth(); err != nil {
			return err
		}
		status, err := a.api.ToggleTwoFactor(cmd.Context(), twofaEnable)
		if err != nil {
			return err
		}
		return printJSON(status)
	},
}

var totpCmd = &cobra.Command{
	Use:   "totp <base32-secret>",
	Short: "Generate the current one-time code from an authenticator secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := twofactor.GenerateCode(args[0], time.Now())
		if err != nil {
			return fmt.Errorf("generating code: %w", err)
		}
		fmt.Println(code)
		return nil
	},
}

func init() {
	twofaToggleCmd.Flags().BoolVar(&twofaEnable, "enable", true, "enable (true) or disable (false)")

	twofaCmd.AddCommand(twofaStatusCmd, twofaToggleCmd)
	rootCmd.AddCommand(twofaCmd, totpCmd)
}
