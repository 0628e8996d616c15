// Package models defines the data models persisted in the database and the
// derivations computed over them at read time.
package models

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	CreatedAt    time.Time
}
