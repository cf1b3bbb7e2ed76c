// File: /models/user.go
package models

import "time"

// Role values stored on User. Only RoleAdmin grants access to the
// admin surface; every other value is treated as "not admin".
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	ID             string    `json:"id" gorm:"primaryKey;size:191"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	HashedPassword string    `json:"-" gorm:"size:255"`
	Role           string    `json:"role" gorm:"not null;default:'USER';size:20"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
