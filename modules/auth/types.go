package auth

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Roles lists every valid role.
func Roles() []Role {
	return []Role{RoleStudent, RoleInstructor, RoleAdmin}
}

// Valid reports whether the role is a member of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// In reports whether the role is one of the allowed roles.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// Account represents a user account. An account is either credential-capable
// (PasswordHash set), Google-capable (GoogleID set), or both; never neither.
// PasswordHash never leaves the store boundary in API responses.
type Account struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	Avatar       string    `bson:"avatar,omitempty" json:"avatar"`
	GoogleID     string    `bson:"googleId,omitempty" json:"-"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Verified     bool      `bson:"verified" json:"verified"`
	LastLogin    time.Time `bson:"lastLogin" json:"lastLogin"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsGoogleUser reports whether the account is linked to a Google identity.
// Derived from stored fields, never persisted.
func (a *Account) IsGoogleUser() bool {
	return a.GoogleID != ""
}

// ProfileURL returns the public profile path for the account.
func (a *Account) ProfileURL() string {
	return "/api/users/" + a.ID + "/profile"
}
