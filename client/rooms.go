package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Rooms lists all rooms.
func (c *Client) Rooms(ctx context.Context) ([]Room, error) {
	var out []Room
	if err := c.do(ctx, http.MethodGet, "/api/habitaciones", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Room fetches a single room by ID.
func (c *Client) Room(ctx context.Context, id int64) (*Room, error) {
	var out Room
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/habitaciones/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RoomsByType lists rooms of the given type.
func (c *Client) RoomsByType(ctx context.Context, tipo string) ([]Room, error) {
	var out []Room
	if err := c.do(ctx, http.MethodGet, "/api/habitaciones/tipo/"+url.PathEscape(tipo), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RoomsFiltered lists rooms matching a type and availability window.
func (c *Client) RoomsFiltered(ctx context.Context, filter RoomFilter) ([]Room, error) {
	q := url.Values{
		"tipo":         []string{filter.Tipo},
		"fechaEntrada": []string{strconv.FormatInt(filter.FechaEntrada, 10)},
		"fechaSalida":  []string{strconv.FormatInt(filter.FechaSalida, 10)},
	}
	var out []Room
	if err := c.do(ctx, http.MethodGet, "/api/habitaciones/filter", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRoom creates a room. The room travels as a JSON "habitacion" part
// and images as "imagenes" file parts of one multipart request.
func (c *Client) CreateRoom(ctx context.Context, room Room, images []RoomImage) (*Room, error) {
	var out Room
	err := c.doMultipart(ctx, http.MethodPost, "/api/habitaciones", "habitacion", room, "imagenes", images, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRoom replaces a room's fields.
func (c *Client) UpdateRoom(ctx context.Context, id int64, room Room) (*Room, error) {
	var out Room
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/habitaciones/%d", id), nil, room, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRoomStatus patches only a room's housekeeping status.
func (c *Client) UpdateRoomStatus(ctx context.Context, id int64, estado string) (*Room, error) {
	var out Room
	body := map[string]string{"estadoHabitacion": estado}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/habitaciones/%d/estado", id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRoom removes a room by its room number.
func (c *Client) DeleteRoom(ctx context.Context, numeroHabitacion int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/habitaciones/%d", numeroHabitacion), nil, nil, nil)
}
