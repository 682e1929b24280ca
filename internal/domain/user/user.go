// Package user holds accounts, used to resolve principals by email and to
// address notifications. Credentials live outside this service.
package user

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/mif-gmao/gmao/internal/domain/shared"
	"github.com/mif-gmao/gmao/internal/shared/authorization"
)

type User struct {
	id        uint
	email     string
	fullName  string
	role      authorization.Role
	active    bool
	createdAt time.Time
}

func NewUser(email, fullName string, role authorization.Role, now time.Time) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email: %q", email)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %q", role)
	}
	return &User{
		email:     email,
		fullName:  strings.TrimSpace(fullName),
		role:      role,
		active:    true,
		createdAt: shared.StorageTime(now),
	}, nil
}

func ReconstructUser(id uint, email, fullName string, role authorization.Role, active bool, createdAt time.Time) *User {
	return &User{id: id, email: email, fullName: fullName, role: role, active: active, createdAt: createdAt}
}

func (u *User) ID() uint                 { return u.id }
func (u *User) Email() string            { return u.email }
func (u *User) FullName() string         { return u.fullName }
func (u *User) Role() authorization.Role { return u.role }
func (u *User) Active() bool             { return u.active }
func (u *User) CreatedAt() time.Time     { return u.createdAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	u.id = id
	return nil
}

// DisplayName prefers the full name, falling back to the email.
func (u *User) DisplayName() string {
	if u.fullName != "" {
		return u.fullName
	}
	return u.email
}

// Repository persists users. Get methods return (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
