package domain

import (
	"errors"
	"time"
)

// User-specific validation errors
var (
	// ErrUserIDInvalid is returned when a user ID is zero or negative.
	ErrUserIDInvalid = errors.New("user ID must be a positive integer")

	// ErrUserNameEmpty is returned when a user's display name is empty.
	ErrUserNameEmpty = errors.New("user display name cannot be empty")

	// ErrGuardianIDInvalid is returned when a guardian ID is zero or negative.
	ErrGuardianIDInvalid = errors.New("guardian ID must be a positive integer")
)

// User represents a board user, typically a non-verbal child communicating
// through card selections. The ID is the identity assigned by the messaging
// transport, so it is carried as-is rather than generated here.
//
// GuardianID is the transport identity of the caregiver who receives
// selection notifications. It is nil until a guardian is explicitly bound,
// and that is an expected state: selections by a guardian-less user are
// still recorded, just not relayed.
type User struct {
	ID          int64     `json:"id"`
	DisplayName string    `json:"display_name"`
	GuardianID  *int64    `json:"guardian_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given transport identity and display
// name, with no guardian bound. Returns an error if validation fails.
func NewUser(id int64, displayName string) (*User, error) {
	user := &User{
		ID:          id,
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID <= 0 {
		return ErrUserIDInvalid
	}

	if u.DisplayName == "" {
		return ErrUserNameEmpty
	}

	if u.GuardianID != nil && *u.GuardianID <= 0 {
		return ErrGuardianIDInvalid
	}

	return nil
}

// HasGuardian reports whether a caregiver is bound to this user.
func (u *User) HasGuardian() bool {
	return u.GuardianID != nil && *u.GuardianID > 0
}
