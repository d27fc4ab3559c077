package domain

import (
	"net/mail"
	"strings"
)

// Email is a validated, normalized e-mail address. The zero value is not a
// valid address; construct via NewEmail.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, NewValidationError("email", "email is required")
	}

	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return Email{}, NewValidationError("email", "invalid email address")
	}

	// mail.ParseAddress accepts local addresses without a domain dot
	at := strings.LastIndex(normalized, "@")
	if at < 1 || !strings.Contains(normalized[at+1:], ".") {
		return Email{}, NewValidationError("email", "invalid email address")
	}

	return Email{value: normalized}, nil
}

// RestoreEmail wraps an already-validated address loaded from the store.
func RestoreEmail(value string) Email {
	return Email{value: value}
}

func (e Email) Value() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

func (e Email) String() string {
	return e.value
}
