package admin

import "time"

// Admin is one administrator credential. PasswordHash is a bcrypt hash,
// never plaintext.
type Admin struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
