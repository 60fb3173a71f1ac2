package models

import "time"

// User is a registered account. The ID is an opaque identifier assigned at
// creation and is the only claim carried in issued tokens.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
