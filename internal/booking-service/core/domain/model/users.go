package model

import "time"

// UserAccount is keyed by email. Passwords are stored exactly as entered and
// compared as strings on login.
type UserAccount struct {
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
