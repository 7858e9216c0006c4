package domain

import "errors"

// Role is the closed set of roles an identity can hold.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

var ErrUserExists = errors.New("username already taken")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUnknownRole = errors.New("unknown role")
var ErrInvalidToken = errors.New("invalid or expired token")

// ParseRole converts a raw string into a Role, rejecting anything outside
// the recognised set. Registration is the only place roles enter the system,
// so this is where the invariant is enforced.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleStudent:
		return Role(s), nil
	default:
		return "", ErrUnknownRole
	}
}

// User models a registered identity. The password is kept verbatim and is
// never serialised.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}
