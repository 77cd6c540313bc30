package models

// Account roles
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents a registered church member or administrator.
// Password holds the stored hash, never the plain text.
type User struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"password,omitempty"`
	Role     string `db:"role" json:"role"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

// Redacted returns a copy of the user without the password hash
func (u User) Redacted() User {
	u.Password = ""
	return u
}

// Actor is the authenticated caller of a request, as proven by its token
type Actor struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the actor carries the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// ValidRole reports whether role is one of the known account roles
func ValidRole(role string) bool {
	return role == RoleMember || role == RoleAdmin
}
