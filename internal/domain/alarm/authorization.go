package alarm

import (
	"fmt"
	"strings"
)

// AuthorizationState is the notification permission granted by the user.
type AuthorizationState int

// Authorization states.
const (
	AuthorizationUndetermined AuthorizationState = iota
	AuthorizationAuthorized
	AuthorizationDenied
)

// String returns the lowercase state name.
func (s AuthorizationState) String() string {
	switch s {
	case AuthorizationAuthorized:
		return "authorized"
	case AuthorizationDenied:
		return "denied"
	default:
		return "undetermined"
	}
}

// MarshalText encodes the state by name.
func (s AuthorizationState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name. An empty name is undetermined.
func (s *AuthorizationState) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "undetermined":
		*s = AuthorizationUndetermined
	case "authorized":
		*s = AuthorizationAuthorized
	case "denied":
		*s = AuthorizationDenied
	default:
		return fmt.Errorf("unknown authorization state %q", text)
	}

	return nil
}
