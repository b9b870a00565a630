package model

import (
	"strings"
	"time"
)

const minPasswordLength = 6

type User struct {
	ID         int
	Email      string
	Username   string
	Password   string
	FullName   string
	DoorNumber string
	Community  string
	CreatedAt  time.Time
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	FullName   string `json:"fullName"`
	DoorNumber string `json:"doorNumber"`
	Community  string `json:"community"`
}

// Valid reports whether every field the sign-up flow collects is present.
func (i RegisterInput) Valid() bool {
	if !strings.Contains(i.Email, "@") || len(i.Password) < minPasswordLength {
		return false
	}
	for _, f := range []string{i.Username, i.FullName, i.DoorNumber, i.Community} {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}

type TokenOutput struct {
	Token string `json:"token"`
}
