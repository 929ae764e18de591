// File: internal/model/user.go
package model

import "time"

// User is a registered account. UserID is the opaque identity handed out at
// registration; ID is the storage key and never leaves the database layer.
type User struct {
	ID           int       `db:"id" json:"-"`
	UserID       string    `db:"user_id" json:"userId"`
	Name         string    `db:"user_name" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Balance      float64   `db:"balance" json:"accountBalance"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
