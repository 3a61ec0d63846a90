package user

import (
	"errors"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"
	"zapshift/internal/pkg/guard"
)

// Domain errors for user operations.
var (
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is the aggregate root for an account. Email is the external identity
// (unique across accounts); the role starts as user and is only elevated
// through SetRole, called by rider approval (to rider) or by an administrator.
type User struct {
	// id uniquely identifies the account
	id kernel.UUID
	// email is the unique external identity
	email string
	// name is the display name
	name string
	// role is the authorization role
	role Role
	// createdAt is the registration timestamp
	createdAt time.Time
	// guard ensures the user was properly constructed
	guard guard.ConstructorGuard
}

// NewUser registers a new account with the default user role.
func NewUser(id kernel.UUID, email, name string, createdAt time.Time) (*User, error) {
	u := &User{
		role:  RoleUser,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistent storage.
func RestoreUser(id kernel.UUID, email, name string, role Role, createdAt time.Time) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setCreatedAt(createdAt),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	u.role = role
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the unique external identity.
func (u *User) Email() string { return u.email }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Role returns the authorization role.
func (u *User) Role() Role { return u.role }

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// SetRole changes the account's authorization role.
func (u *User) SetRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// PromoteToRider grants the rider role. Called as the coupled side effect of
// rider approval.
func (u *User) PromoteToRider() {
	u.role = RoleRider
}

// setID validates and sets the account's unique identifier.
func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

// setEmail validates and sets the unique external identity.
func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

// setName validates and sets the display name.
func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

// setCreatedAt validates and sets the registration timestamp.
func (u *User) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	u.createdAt = createdAt
	return nil
}
