package domain

import "time"

// User carries the identity fields the core needs for lookups and
// notification text. Credentials live outside this service.
type User struct {
	ID          string
	Email       string
	Username    string
	DisplayName string
	CreatedAt   time.Time
}

// Name returns the best human-readable label for the user.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
