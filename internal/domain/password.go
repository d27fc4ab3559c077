package domain

import "unicode"

// Password wraps either a plaintext password that passed the strength rule
// or a stored hash. Once a user is persisted the wrapped value is always a
// hash; plaintext must never reach PasswordFromHash.
type Password struct {
	value string
}

// NewPassword validates strength: at least 8 characters with one uppercase
// letter, one lowercase letter and one digit.
func NewPassword(plain string) (Password, error) {
	if len(plain) < 8 {
		return Password{}, NewValidationError("password", "password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return Password{}, NewValidationError("password", "password must contain at least one uppercase letter, one lowercase letter, and one number")
	}

	return Password{value: plain}, nil
}

// PasswordFromHash wraps an already-hashed password without strength
// validation.
func PasswordFromHash(hash string) Password {
	return Password{value: hash}
}

func (p Password) Value() string {
	return p.value
}
