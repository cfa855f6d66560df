package service

import (
	"errors"
	"testing"

	"github.com/paktrade/holdings-api/internal/core/ports"
)

func validSignup() ports.SignupInput {
	return ports.SignupInput{
		Email:    "a@b.com",
		Password: "longenough1",
		Username: "ali",
	}
}

func TestValidateSignup_Valid(t *testing.T) {
	out, err := ValidateSignup(validSignup())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Email != "a@b.com" {
		t.Fatalf("email = %q", out.Email)
	}
}

func TestValidateSignup_Normalizes(t *testing.T) {
	in := validSignup()
	in.Email = "  A@B.Com "
	in.Username = " ali "

	out, err := ValidateSignup(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Email != "a@b.com" || out.Username != "ali" {
		t.Fatalf("not normalized: %q %q", out.Email, out.Username)
	}
}

func TestValidateSignup_Failures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ports.SignupInput)
		field  string
	}{
		{"missing email", func(in *ports.SignupInput) { in.Email = "" }, "email"},
		{"missing password", func(in *ports.SignupInput) { in.Password = "" }, "password"},
		{"missing username", func(in *ports.SignupInput) { in.Username = "" }, "username"},
		{"bad email", func(in *ports.SignupInput) { in.Email = "not-an-email" }, "email"},
		{"no tld", func(in *ports.SignupInput) { in.Email = "a@b" }, "email"},
		{"short password", func(in *ports.SignupInput) { in.Password = "short" }, "password"},
		{"bad phone", func(in *ports.SignupInput) { in.Phone = "12345" }, "phone"},
		{"phone wrong prefix", func(in *ports.SignupInput) { in.Phone = "+13001234567" }, "phone"},
		{"phone too short", func(in *ports.SignupInput) { in.Phone = "+92300123456" }, "phone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSignup()
			tc.mutate(&in)

			_, err := ValidateSignup(in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("field = %q, want %q", ve.Field, tc.field)
			}
		})
	}
}

func TestValidateSignup_ValidPhones(t *testing.T) {
	for _, phone := range []string{"+923001234567", "03001234567", ""} {
		in := validSignup()
		in.Phone = phone
		if _, err := ValidateSignup(in); err != nil {
			t.Fatalf("phone %q rejected: %v", phone, err)
		}
	}
}

// The signup checks short-circuit in order; a payload violating several rules
// reports the first.
func TestValidateSignup_Order(t *testing.T) {
	in := ports.SignupInput{Email: "bad-email", Password: "short", Username: "ali", Phone: "12345"}

	_, err := ValidateSignup(in)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "email" {
		t.Fatalf("first violation should be email, got %q", ve.Field)
	}
}

func TestValidateLogin(t *testing.T) {
	if _, err := ValidateLogin(ports.LoginInput{Email: "a@b.com", Password: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ValidateLogin(ports.LoginInput{Password: "x"}); err == nil {
		t.Fatalf("expected error for missing email")
	}
	if _, err := ValidateLogin(ports.LoginInput{Email: "a@b.com"}); err == nil {
		t.Fatalf("expected error for missing password")
	}
	// Login never enforces a length floor; the hash comparison settles it.
	if _, err := ValidateLogin(ports.LoginInput{Email: "a@b.com", Password: "x"}); err != nil {
		t.Fatalf("short password rejected at validation: %v", err)
	}
}
