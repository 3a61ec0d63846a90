package user

import (
	"fmt"

	"zapshift/internal/pkg/errs"
)

// Role is the closed set of authorization roles. Role-gated operations take
// the caller's role as an explicit parameter; free-form role strings from the
// outside are parsed through RoleFromString and rejected if unknown.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleUser is the default role of every registered account.
	RoleUser

	// RoleRider is granted when the account's rider application is approved.
	RoleRider

	// RoleAdmin may approve riders, assign deliveries, and change roles.
	RoleAdmin
)

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleUser:  "user",
		RoleRider: "rider",
		RoleAdmin: "admin",
	}
}

// RoleFromString parses the wire/persistence form of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the role is one of the valid values.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase name used on the wire and in persistence.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
