package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hotelsoft/concierge/client"
)

// adminRole is the backend's role string for hotel administrators.
const adminRole = "ADMIN"

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Browse and manage rooms",
}

var roomFilter client.RoomFilter

var roomsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rooms, optionally filtered by type and availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		var rooms []client.Room
		switch {
		case roomFilter.FechaEntrada != 0 || roomFilter.FechaSalida != 0:
			rooms, err = a.api.RoomsFiltered(cmd.Context(), roomFilter)
		case roomFilter.Tipo != "":
			rooms, err = a.api.RoomsByType(cmd.Context(), roomFilter.Tipo)
		default:
			rooms, err = a.api.Rooms(cmd.Context())
		}
		if err != nil {
			return err
		}
		return printJSON(rooms)
	},
}

var roomsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one room",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid room id %q", args[0])
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		room, err := a.api.Room(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(room)
	},
}

var (
	newRoom    client.Room
	roomImages []string
)

var roomsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a room (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireRole(adminRole); err != nil {
			return err
		}

		images := make([]client.RoomImage, 0, len(roomImages))
		for _, path := range roomImages {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading image %s: %w", path, err)
			}
			images = append(images, client.RoomImage{
				Filename: filepath.Base(path),
				Content:  content,
			})
		}

		created, err := a.api.CreateRoom(cmd.Context(), newRoom, images)
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var roomsStatusCmd = &cobra.Command{
	Use:   "status <id> <estado>",
	Short: "Update a room's housekeeping status (admin only)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid room id %q", args[0])
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireRole(adminRole); err != nil {
			return err
		}
		room, err := a.api.UpdateRoomStatus(cmd.Context(), id, args[1])
		if err != nil {
			return err
		}
		return printJSON(room)
	},
}

var roomsDeleteCmd = &cobra.Command{
	Use:   "delete <numero>",
	Short: "Delete a room by room number (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		numero, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid room number %q", args[0])
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.requireRole(adminRole); err != nil {
			return err
		}
		if err := a.api.DeleteRoom(cmd.Context(), numero); err != nil {
			return err
		}
		fmt.Println("Room deleted")
		return nil
	},
}

func init() {
	roomsListCmd.Flags().StringVar(&roomFilter.Tipo, "type", "", "room type filter")
	roomsListCmd.Flags().Int64Var(&roomFilter.FechaEntrada, "check-in", 0, "check-in date (epoch ms)")
	roomsListCmd.Flags().Int64Var(&roomFilter.FechaSalida, "check-out", 0, "check-out date (epoch ms)")

	roomsCreateCmd.Flags().StringVar(&newRoom.NombreHabitacion, "name", "", "room name")
	roomsCreateCmd.Flags().StringVar(&newRoom.NumeroHabitacion, "number", "", "room number")
	roomsCreateCmd.Flags().StringVar(&newRoom.Descripcion, "description", "", "description")
	roomsCreateCmd.Flags().StringVar(&newRoom.TipoHabitacion, "type", "", "room type")
	roomsCreateCmd.Flags().Float64Var(&newRoom.Precio, "price", 0, "nightly price")
	roomsCreateCmd.Flags().StringSliceVar(&newRoom.Comodidades, "amenity", nil, "amenity (repeatable)")
	roomsCreateCmd.Flags().StringSliceVar(&roomImages, "image", nil, "image file (repeatable)")
	roomsCreateCmd.MarkFlagRequired("name")
	roomsCreateCmd.MarkFlagRequired("number")
	roomsCreateCmd.MarkFlagRequired("type")

	roomsCmd.AddCommand(roomsListCmd, roomsGetCmd, roomsCreateCmd, roomsStatusCmd, roomsDeleteCmd)
	rootCmd.AddCommand(roomsCmd)
}
