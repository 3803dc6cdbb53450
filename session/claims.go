package session

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/hotelsoft/concierge/client"
	"github.com/hotelsoft/concierge/internal/util"
)

// Claims is the decoded payload of a bearer token. The token is an opaque
// claim container here: the backend signs and verifies it, the client
// only reads embedded claims.
type Claims map[string]any

// decodeClaims extracts the payload segment of a bearer token. Returns an
// error for anything that does not look like a three-segment signed token
// with a JSON payload.
func decodeClaims(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("token has %d segments, want at least 2", len(parts))
	}
	payload, err := util.DecodeBase64Segment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decoding token payload: %w", err)
	}
	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("parsing token payload: %w", err)
	}
	return claims, nil
}

// str returns the named claim as a string, or "" if absent or not
// string-shaped.
func (c Claims) str(name string) string {
	switch v := c[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}

// integer returns the named claim as an int64, or 0.
func (c Claims) integer(name string) int64 {
	switch v := c[name].(type) {
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}

// ExpiresAt returns the token expiry, if an exp claim is present. The
// claim is seconds since epoch.
func (c Claims) ExpiresAt() (time.Time, bool) {
	v, ok := c["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(v * 1000)), true
}

// Claim name precedence for each profile field, applied first-match-wins.
// This is the single place the backend's alternative claim spellings are
// reconciled.
var (
	nameClaims     = []string{"nombre", "name", "nombreCompleto", "userName", "sub"}
	emailClaims    = []string{"email", "sub"}
	fullNameClaims = []string{"nombreCompleto", "nombre", "name"}
	idClaims       = []string{"id", "userId", "idUsuario"}
)

func (c Claims) firstString(names []string) string {
	for _, name := range names {
		if v := c.str(name); v != "" {
			return v
		}
	}
	return ""
}

func (c Claims) firstInteger(names []string) int64 {
	for _, name := range names {
		if v := c.integer(name); v != 0 {
			return v
		}
	}
	return 0
}

// Profile derives a user profile snapshot from the claims. Absent claims
// leave zero fields; the generic subject claim backstops name and email.
func (c Claims) Profile() *client.User {
	return &client.User{
		ID:             c.firstInteger(idClaims),
		Cedula:         c.str("cedula"),
		Nombre:         c.firstString(nameClaims),
		NombreCompleto: c.firstString(fullNameClaims),
		Email:          strfmt.Email(c.firstString(emailClaims)),
		Role:           c.str("role"),
		Telefono:       c.str("telefono"),
	}
}
