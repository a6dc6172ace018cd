package domain

import "time"

// User represents a registered account. PasswordHash holds a bcrypt
// digest; the plaintext password is never stored.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
