// Package user holds the auth-facing account entity.
package user

import "time"

// User is an authenticated account. EmailNotifications gates the overdue
// digest email and defaults to enabled for new accounts.
type User struct {
	ID                 string
	Email              string
	Name               string
	EmailNotifications bool
	CreatedAt          time.Time
}

// DisplayName returns the user's name, falling back to the local part of
// the email address when no name is set.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	for i := 0; i < len(u.Email); i++ {
		if u.Email[i] == '@' {
			return u.Email[:i]
		}
	}
	return u.Email
}
