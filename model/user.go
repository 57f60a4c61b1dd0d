package model

import "time"

// User represents the authenticated account. Owned by the session manager
// and mirrored into the local store so sessions survive a restart.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Avatar        string    `json:"avatar,omitempty"`
	IsVerified    bool      `json:"isVerified"`
	IsAdmin       bool      `json:"isAdmin"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UserUpdate is a partial profile update. Nil fields are left untouched.
type UserUpdate struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Avatar        *string `json:"avatar,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
}

// Apply merges the update into a user.
func (u UserUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Avatar != nil {
		user.Avatar = *u.Avatar
	}
	if u.ContactNumber != nil {
		user.ContactNumber = *u.ContactNumber
	}
}

// Tokens holds the bearer credential and its renewal credential.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}
