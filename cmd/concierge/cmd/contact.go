package cmd

import (
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"

	"github.com/hotelsoft/concierge/client"
)

var (
	contactReq   client.ContactRequest
	contactEmail string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message to the hotel",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		contactReq.Email = strfmt.Email(contactEmail)
		resp, err := a.api.SendContactEmail(cmd.Context(), contactReq)
		if err != nil {
			return err
		}
		if msg := resp.Text(); msg != "" {
			fmt.Println(msg)
		} else {
			fmt.Println("Message sent")
		}
		return nil
	},
}

func init() {
	contactCmd.Flags().StringVar(&contactReq.Nombre, "name", "", "your name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "your email")
	contactCmd.Flags().StringVar(&contactReq.Asunto, "subject", "", "subject")
	contactCmd.Flags().StringVar(&contactReq.Mensaje, "message", "", "message body")
	contactCmd.MarkFlagRequired("name")
	contactCmd.MarkFlagRequired("email")
	contactCmd.MarkFlagRequired("message")

	rootCmd.AddCommand(contactCmd)
}
