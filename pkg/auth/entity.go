package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the single canonical user representation. Every layer works with
// this struct; there is no map-shaped alternative anywhere.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Age          int
	Designation  string
	PasswordHash string
	CreatedAt    time.Time
}

// Designations a user can pick from at registration.
var Designations = []string{
	"Student",
	"Professional",
	"Recent Graduate",
	"Career Changer",
	"Entrepreneur",
	"Other",
}

// ValidDesignation reports whether d is one of the allowed options.
func ValidDesignation(d string) bool {
	for _, known := range Designations {
		if known == d {
			return true
		}
	}
	return false
}
