package service

import (
	"regexp"
	"strings"

	"github.com/paktrade/holdings-api/internal/core/ports"
)

// ValidationError reports the first rule a signup/login payload violated,
// tagged with the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phonePattern matches Pakistani mobile numbers: +92 or 0, then 10 digits.
var phonePattern = regexp.MustCompile(`^(\+92|0)[0-9]{10}$`)

const minPasswordLen = 8

// ValidateSignup checks a signup payload in order, short-circuiting on the
// first failure, and returns the normalized payload. Pure and stateless.
func ValidateSignup(in ports.SignupInput) (ports.SignupInput, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)
	in.Phone = strings.TrimSpace(in.Phone)

	switch {
	case in.Email == "":
		return in, &ValidationError{Field: "email", Message: "All fields are required"}
	case in.Password == "":
		return in, &ValidationError{Field: "password", Message: "All fields are required"}
	case in.Username == "":
		return in, &ValidationError{Field: "username", Message: "All fields are required"}
	}
	if !emailPattern.MatchString(in.Email) {
		return in, &ValidationError{Field: "email", Message: "Invalid email format"}
	}
	if len(in.Password) < minPasswordLen {
		return in, &ValidationError{Field: "password", Message: "Password must be at least 8 characters"}
	}
	if in.Phone != "" && !phonePattern.MatchString(in.Phone) {
		return in, &ValidationError{Field: "phone", Message: "Invalid Pakistani phone number"}
	}
	return in, nil
}

// ValidateLogin checks presence only; password quality is settled by the
// hash comparison, not repeated here.
func ValidateLogin(in ports.LoginInput) (ports.LoginInput, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Email == "" {
		return in, &ValidationError{Field: "email", Message: "All fields are required"}
	}
	if in.Password == "" {
		return in, &ValidationError{Field: "password", Message: "All fields are required"}
	}
	return in, nil
}
