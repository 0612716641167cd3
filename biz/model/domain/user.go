package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	UserID       string
	Name         string
	Email        string
	Tel          string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPatch carries a partial update; nil fields stay untouched.
type UserPatch struct {
	Name     *string
	Email    *string
	Tel      *string
	Password *string
	Role     *Role
}

func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Tel == nil && p.Password == nil && p.Role == nil
}
