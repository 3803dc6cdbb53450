package client

import (
	"strings"

	"github.com/go-openapi/strfmt"
)

// User is the profile snapshot the backend returns at login, or that the
// session layer derives from token claims when the backend omits one.
// Field names follow the backend's JSON contract.
type User struct {
	ID             int64        `json:"id,omitempty"`
	Cedula         string       `json:"cedula,omitempty"`
	Nombre         string       `json:"nombre,omitempty"`
	NombreCompleto string       `json:"nombreCompleto,omitempty"`
	Email          strfmt.Email `json:"email,omitempty"`
	Role           string       `json:"role,omitempty"`
	Telefono       string       `json:"telefono,omitempty"`
	Enabled        bool         `json:"enabled,omitempty"`
	Puntos         int          `json:"puntos,omitempty"`
}

// DisplayName returns the best available display name.
func (u *User) DisplayName() string {
	switch {
	case u.Nombre != "":
		return u.Nombre
	case u.NombreCompleto != "":
		return u.NombreCompleto
	default:
		return string(u.Email)
	}
}

// FirstName returns the first segment of the display name.
func (u *User) FirstName() string {
	fields := strings.Fields(u.DisplayName())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// RegisterRequest is the JSON body for POST /api/auth/register.
type RegisterRequest struct {
	Cedula         string       `json:"cedula"`
	NombreCompleto string       `json:"nombreCompleto"`
	Email          strfmt.Email `json:"email"`
	Password       string       `json:"password"`
	Telefono       string       `json:"telefono"`
}

// LoginRequest is the JSON body for POST /api/auth/login.
type LoginRequest struct {
	Email    strfmt.Email `json:"email"`
	Password string       `json:"password"`
}

// LoginResponse is returned from login and google-login. Exactly one of
// Token or a two-factor flag is expected; TwoFactorRequired is the legacy
// spelling of Requires2FA and either one triggers step-up.
type LoginResponse struct {
	Token             string `json:"token,omitempty"`
	Requires2FA       bool   `json:"requires2FA,omitempty"`
	TwoFactorRequired bool   `json:"twoFactorRequired,omitempty"`
	Message           string `json:"message,omitempty"`
	Mensaje           string `json:"mensaje,omitempty"`
	User              *User  `json:"user,omitempty"`
}

// NeedsSecondFactor reports whether the response demands a two-factor
// step-up instead of carrying a token.
func (r *LoginResponse) NeedsSecondFactor() bool {
	return r.Requires2FA || r.TwoFactorRequired
}

// GoogleLoginRequest is the JSON body for POST /api/auth/google-login.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// TwoFactorVerifyRequest is the JSON body for POST /api/auth/verify-2fa.
type TwoFactorVerifyRequest struct {
	Email strfmt.Email `json:"email"`
	Code  string       `json:"code"`
}

// TwoFactorVerifyResponse is returned from POST /api/auth/verify-2fa.
type TwoFactorVerifyResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// TwoFactorToggleRequest is the JSON body for POST /api/auth/toggle-2fa.
type TwoFactorToggleRequest struct {
	Enable bool `json:"enable"`
}

// TwoFactorStatusResponse is returned from GET /api/auth/2fa-status and
// POST /api/auth/toggle-2fa.
type TwoFactorStatusResponse struct {
	Enabled bool   `json:"enabled"`
	QRCode  string `json:"qrCode,omitempty"`
}

// ForgotPasswordRequest is the JSON body for POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email strfmt.Email `json:"email"`
}

// ResetPasswordRequest is the JSON body for POST /api/auth/reset-password
// and POST /api/auth/change-password.
type ResetPasswordRequest struct {
	Token         string `json:"token"`
	NuevaPassword string `json:"nuevaPassword"`
}

// ValidateResetTokenResponse is returned from GET /api/auth/validate-reset-token.
type ValidateResetTokenResponse struct {
	Valid bool `json:"valid"`
}

// MessageResponse is the generic acknowledgement shape. The backend
// answers in either field depending on the endpoint.
type MessageResponse struct {
	Message string `json:"message,omitempty"`
	Mensaje string `json:"mensaje,omitempty"`
}

// Text returns whichever message field is populated.
func (m *MessageResponse) Text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Mensaje
}

// Room describes a hotel room.
type Room struct {
	ID               int64    `json:"id,omitempty"`
	NombreHabitacion string   `json:"nombreHabitacion"`
	NumeroHabitacion string   `json:"numeroHabitacion"`
	Descripcion      string   `json:"descripcion,omitempty"`
	EstadoHabitacion string   `json:"estadoHabitacion,omitempty"`
	TipoHabitacion   string   `json:"tipoHabitacion"`
	Precio           float64  `json:"precio"`
	Comodidades      []string `json:"comodidades"`
	Imagenes         []string `json:"imagenes,omitempty"`
}

// RoomImage is an image part attached to a multipart room create.
type RoomImage struct {
	Filename string
	Content  []byte
}

// RoomFilter selects rooms by type and availability window.
type RoomFilter struct {
	Tipo         string
	FechaEntrada int64 // epoch milliseconds
	FechaSalida  int64 // epoch milliseconds
}

// Booking is the JSON body for creating or updating a reservation.
type Booking struct {
	IDReserva     int64           `json:"idReserva,omitempty"`
	IDUsuario     int64           `json:"idUsuario"`
	IDHabitacion  int64           `json:"idHabitacion"`
	NombreTitular string          `json:"nombreTitular"`
	Email         strfmt.Email    `json:"email"`
	Telefono      string          `json:"telefono"`
	FechaEntrada  strfmt.DateTime `json:"fechaEntrada"`
	FechaSalida   strfmt.DateTime `json:"fechaSalida"`
	Puntos        int             `json:"puntos"`
}

// BookingResponse is the denormalized reservation view the backend returns.
type BookingResponse struct {
	IDReserva     int64           `json:"idReserva"`
	NombreTitular string          `json:"nombreTitular"`
	Email         strfmt.Email    `json:"email"`
	Telefono      string          `json:"telefono"`
	FechaEntrada  strfmt.DateTime `json:"fechaEntrada"`
	FechaSalida   strfmt.DateTime `json:"fechaSalida"`
	PrecioTotal   float64         `json:"precioTotal"`
	EstadoReserva string          `json:"estadoReserva,omitempty"`
	Habitacion    Room            `json:"habitacion"`
}

// CleaningTask is one entry in a cleaner's task list.
type CleaningTask struct {
	ID               int64           `json:"id"`
	NumeroHabitacion string          `json:"numeroHabitacion"`
	Fecha            strfmt.DateTime `json:"fecha"`
	Estado           string          `json:"estado,omitempty"`
}

// ContactRequest is the JSON body for POST /api/contactenos/send.
type ContactRequest struct {
	Nombre  string       `json:"nombre"`
	Email   strfmt.Email `json:"email"`
	Asunto  string       `json:"asunto"`
	Mensaje string       `json:"mensaje"`
}
