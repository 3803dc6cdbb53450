package cmd

import (
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"

	"github.com/hotelsoft/concierge/client"
)

var registerReq client.RegisterRequest
var registerEmail string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		registerReq.Email = strfmt.Email(registerEmail)
		resp, err := a.mgr.Register(cmd.Context(), registerReq)
		if err != nil {
			return err
		}
		if msg := resp.Text(); msg != "" {
			fmt.Println(msg)
		} else {
			fmt.Println("Account created")
		}
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerReq.Cedula, "cedula", "", "national ID")
	registerCmd.Flags().StringVar(&registerReq.NombreCompleto, "name", "", "full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address")
	registerCmd.Flags().StringVar(&registerReq.Password, "password", "", "password")
	registerCmd.Flags().StringVar(&registerReq.Telefono, "phone", "", "phone number")
	registerCmd.MarkFlagRequired("cedula")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd)
}
