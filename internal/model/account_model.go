package model

import "time"

// Role is the closed set of account roles, stored as the user_role
// Postgres enum.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleUser      Role = "User"
	RoleModerator Role = "Moderator"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleModerator:
		return true
	}
	return false
}

type Account struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
