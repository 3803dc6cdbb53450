package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"

	"github.com/hotelsoft/concierge/client"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "Manage reservations",
}

var bookingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reservations (yours, or all as admin)",
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
		var bookings []client.BookingResponse
		if user != nil && user.Role == adminRole {
			bookings, err = a.api.Bookings(cmd.Context())
		} else if user != nil && user.ID != 0 {
			bookings, err = a.api.BookingsByUser(cmd.Context(), user.ID)
		} else {
			return fmt.Errorf("stored profile has no user id; log in again")
		}
		if err != nil {
			return err
		}
		return printJSON(bookings)
	},
}

var bookingsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one reservation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid booking id %q", args[0])
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireAuth(); err != nil {
			return err
		}
		booking, err := a.api.Booking(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(booking)
	},
}

var (
	newBooking      client.Booking
	bookingEmail    string
	bookingCheckIn  string
	bookingCheckOut string
)

var bookingsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a reservation",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireAuth(); err != nil {
			return err
		}

		checkIn, err := time.Parse("2006-01-02", bookingCheckIn)
		if err != nil {
			return fmt.Errorf("invalid check-in date %q (want YYYY-MM-DD)", bookingCheckIn)
		}
		checkOut, err := time.Parse("2006-01-02", bookingCheckOut)
		if err != nil {
			return fmt.Errorf("invalid check-out date %q (want YYYY-MM-DD)", bookingCheckOut)
		}
		if !checkOut.After(checkIn) {
			return fmt.Errorf("check-out must be after check-in")
		}

		user, _ := a.mgr.CurrentUser()
		if newBooking.IDUsuario == 0 && user != nil {
			newBooking.IDUsuario = user.ID
		}
		newBooking.Email = strfmt.Email(bookingEmail)
		newBooking.FechaEntrada = strfmt.DateTime(checkIn)
		newBooking.FechaSalida = strfmt.DateTime(checkOut)

		created, err := a.api.CreateBooking(cmd.Context(), newBooking)
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var bookingsCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a reservation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid booking id %q", args[0])
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireAuth(); err != nil {
			return err
		}
		if err := a.api.DeleteBooking(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("Reservation cancelled")
		return nil
	},
}

func init() {
	bookingsCreateCmd.Flags().Int64Var(&newBooking.IDHabitacion, "room", 0, "room id")
	bookingsCreateCmd.Flags().StringVar(&newBooking.NombreTitular, "holder", "", "reservation holder name")
	bookingsCreateCmd.Flags().StringVar(&bookingEmail, "email", "", "contact email")
	bookingsCreateCmd.Flags().StringVar(&newBooking.Telefono, "phone", "", "contact phone")
	bookingsCreateCmd.Flags().StringVar(&bookingCheckIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	bookingsCreateCmd.Flags().StringVar(&bookingCheckOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	bookingsCreateCmd.Flags().IntVar(&newBooking.Puntos, "points", 0, "loyalty points to redeem")
	bookingsCreateCmd.MarkFlagRequired("room")
	bookingsCreateCmd.MarkFlagRequired("holder")
	bookingsCreateCmd.MarkFlagRequired("email")
	bookingsCreateCmd.MarkFlagRequired("check-in")
	bookingsCreateCmd.MarkFlagRequired("check-out")

	bookingsCmd.AddCommand(bookingsListCmd, bookingsGetCmd, bookingsCreateCmd, bookingsCancelCmd)
	rootCmd.AddCommand(bookingsCmd)
}
