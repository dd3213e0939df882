package entity

import "time"

// User pengguna aplikasi. Password disimpan sebagai hash bcrypt.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
