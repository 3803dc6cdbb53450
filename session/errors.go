package session

import "errors"

var (
	// ErrMalformedResponse is returned when a login response carries
	// neither a token nor a two-factor challenge. The backend contract
	// guarantees exactly one of the two.
	ErrMalformedResponse = errors.New("login response contains neither token nor two-factor challenge")

	// ErrNoPendingChallenge is returned when a two-factor verification is
	// attempted without a challenge in progress.
	ErrNoPendingChallenge = errors.New("no two-factor challenge in progress")

	// ErrInvalidCode is returned when a two-factor code fails client-side
	// validation before any network call.
	ErrInvalidCode = errors.New("verification code must be exactly 6 digits")
)
