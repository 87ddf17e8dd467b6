package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is the single administrative credential record.
type User struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string
	PasswordHash string
	ID           int64
}

// SetPassword hashes and stores the given password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the given password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
