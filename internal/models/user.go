package models

import "time"

// User is a managed account row. Optional profile fields stay zero-valued
// until the owner fills them in; YearOfBirth is a pointer so an unset year
// survives a round trip through the database as NULL.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // don’t expose hash
	Name         string    `json:"name,omitempty"`
	Surname      string    `json:"surname,omitempty"`
	YearOfBirth  *int      `json:"year_of_birth,omitempty"`
	Description  string    `json:"description,omitempty"`
	Photo        string    `json:"photo,omitempty"` // blob-store key of the uploaded photo
	CreatedAt    time.Time `json:"created_at"`
}
