package client

import (
	"context"
	"fmt"
	"net/http"
)

// Bookings lists all reservations.
func (c *Client) Bookings(ctx context.Context) ([]BookingResponse, error) {
	var out []BookingResponse
	if err := c.do(ctx, http.MethodGet, "/api/reservas", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Booking fetches one reservation by ID.
func (c *Client) Booking(ctx context.Context, id int64) (*BookingResponse, error) {
	var out BookingResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/reservas/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookingsByUser lists a user's reservations.
func (c *Client) BookingsByUser(ctx context.Context, idUsuario int64) ([]BookingResponse, error) {
	var out []BookingResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/reservas/user/%d", idUsuario), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBooking creates a reservation.
func (c *Client) CreateBooking(ctx context.Context, booking Booking) (*BookingResponse, error) {
	var out BookingResponse
	if err := c.do(ctx, http.MethodPost, "/api/reservas", nil, booking, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBooking replaces a reservation's fields.
func (c *Client) UpdateBooking(ctx context.Context, id int64, booking Booking) (*BookingResponse, error) {
	var out BookingResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/reservas/%d", id), nil, booking, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBooking cancels a reservation.
func (c *Client) DeleteBooking(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/reservas/%d", id), nil, nil, nil)
}
