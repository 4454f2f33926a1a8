// Package user owns the user records the auth gateway authenticates against.
// The gateway only sees the Store interface; persistence lives behind it.
package user

import "time"

// User is a stored account record. PasswordHash is the encoded digest
// produced by the credential hasher; the raw password is never stored.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:128;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:256;not null" json:"-"`
	Role         string    `gorm:"size:32;not null;default:user" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides the GORM default.
func (User) TableName() string { return "users" }
