package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-openapi/strfmt"
)

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates with email and password. The response carries
// either a session token or a two-factor challenge flag.
func (c *Client) Login(ctx context.Context, email strfmt.Email, password string) (*LoginResponse, error) {
	var out LoginResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GoogleLogin exchanges a Google ID token for a backend session token.
func (c *Client) GoogleLogin(ctx context.Context, idToken string) (*LoginResponse, error) {
	var out LoginResponse
	req := GoogleLoginRequest{IDToken: idToken}
	if err := c.do(ctx, http.MethodPost, "/api/auth/google-login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyTwoFactor submits the one-time code for a pending login. The
// server is the authority on attempt limits.
func (c *Client) VerifyTwoFactor(ctx context.Context, email strfmt.Email, code string) (*TwoFactorVerifyResponse, error) {
	var out TwoFactorVerifyResponse
	req := TwoFactorVerifyRequest{Email: email, Code: code}
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify-2fa", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleTwoFactor enables or disables 2FA for the authenticated user.
func (c *Client) ToggleTwoFactor(ctx context.Context, enable bool) (*TwoFactorStatusResponse, error) {
	var out TwoFactorStatusResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/toggle-2fa", nil, TwoFactorToggleRequest{Enable: enable}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TwoFactorStatus reports the authenticated user's 2FA state.
func (c *Client) TwoFactorStatus(ctx context.Context) (*TwoFactorStatusResponse, error) {
	var out TwoFactorStatusResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/2fa-status", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword requests a password-reset email.
func (c *Client) ForgotPassword(ctx context.Context, email strfmt.Email) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/forgot-password", nil, ForgotPasswordRequest{Email: email}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateResetToken checks whether a password-reset token is still usable.
func (c *Client) ValidateResetToken(ctx context.Context, token string) (bool, error) {
	var out ValidateResetTokenResponse
	q := url.Values{"token": []string{token}}
	if err := c.do(ctx, http.MethodGet, "/api/auth/validate-reset-token", q, nil, &out); err != nil {
		return false, err
	}
	return out.Valid, nil
}

// ResetPassword sets a new password using a reset token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (*MessageResponse, error) {
	var out MessageResponse
	req := ResetPasswordRequest{Token: token, NuevaPassword: newPassword}
	if err := c.do(ctx, http.MethodPost, "/api/auth/reset-password", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword changes the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, token, newPassword string) (*MessageResponse, error) {
	var out MessageResponse
	req := ResetPasswordRequest{Token: token, NuevaPassword: newPassword}
	if err := c.do(ctx, http.MethodPost, "/api/auth/change-password", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
