package domain

import "time"

const (
	RoleMember = "member"
	RoleGuest  = "guest"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email,omitempty"`
	FullName     string    `json:"name,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
