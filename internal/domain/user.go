package domain

import (
	"context"
	"time"
)

// DefaultProfileImageURL is assigned to accounts that never uploaded an avatar.
const DefaultProfileImageURL = "/images/default-avatar.png"

const RoleUser = "USER"

// User represents a registered author. PasswordHash and PasswordSalt are
// hex-encoded and must never appear in any serialized response.
type User struct {
	ID              int64
	Email           string
	FullName        string
	ProfileImageURL string
	PasswordHash    string
	PasswordSalt    string
	Role            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProfileUpdate selects exactly one profile field to change. Exactly one
// pointer must be non-nil; Validate enforces that.
type ProfileUpdate struct {
	Email           *string
	FullName        *string
	ProfileImageURL *string
}

// Validate reports ErrInvalidInput unless exactly one field is selected and
// its value is non-empty.
func (u ProfileUpdate) Validate() error {
	set := 0
	for _, v := range []*string{u.Email, u.FullName, u.ProfileImageURL} {
		if v != nil {
			if *v == "" {
				return ErrInvalidInput
			}
			set++
		}
	}
	if set != 1 {
		return ErrInvalidInput
	}
	return nil
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	List(ctx context.Context) ([]User, error)
	DeleteAll(ctx context.Context) (int64, error)
}
