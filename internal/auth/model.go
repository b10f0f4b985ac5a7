package auth

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is the domain entity. Password holds the bcrypt hash and never
// leaves the package in responses.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
