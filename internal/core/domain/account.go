package domain

import (
	"errors"
	"time"
)

// AccountStatus represents the lifecycle state of an account.
type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusSuspended AccountStatus = "suspended"
	StatusClosed    AccountStatus = "closed"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountExists = errors.New("account already exists")
var ErrAccountNotFound = errors.New("account not found")
var ErrAccountNotActive = errors.New("account not active")
var ErrComplianceRequired = errors.New("sharia compliance required")

// Account models an authenticated end user of the holdings platform.
// PasswordHash is write-once at creation and never serialized outward.
type Account struct {
	ID                string        `json:"id"`
	Email             string        `json:"email"`
	Username          string        `json:"username"`
	PasswordHash      string        `json:"-"`
	Phone             string        `json:"phone,omitempty"`
	IsShariaCompliant bool          `json:"isShariaCompliant"`
	Status            AccountStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
