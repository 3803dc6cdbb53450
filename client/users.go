package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-openapi/strfmt"
)

// UserByCedula looks up a user by national ID.
func (c *Client) UserByCedula(ctx context.Context, cedula string) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/users/cedula/"+url.PathEscape(cedula), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserByEmail looks up a user by email.
func (c *Client) UserByEmail(ctx context.Context, email strfmt.Email) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/users/email/"+url.PathEscape(string(email)), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CleaningTasksByUser lists the cleaning tasks assigned to a user.
func (c *Client) CleaningTasksByUser(ctx context.Context, idUsuario int64) ([]CleaningTask, error) {
	var out []CleaningTask
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/limpiezas", idUsuario), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendContactEmail submits the contact form.
func (c *Client) SendContactEmail(ctx context.Context, req ContactRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/api/contactenos/send", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
