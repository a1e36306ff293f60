package models

import "time"

// User is a registered account. PasswordHash never leaves the server.
// BlogIDs holds the ids of authored blogs in creation order; repositories
// fill it on List only.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	BlogIDs      []string
	CreatedAt    time.Time
}

// Summary returns the public identity of u.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Name: u.Name}
}

// UserSummary is the public identity of a user, as embedded into blogs.
type UserSummary struct {
	ID       string
	Username string
	Name     string
}

// UserProfile is a user together with short descriptions of their blogs.
type UserProfile struct {
	UserSummary
	Blogs []BlogSummary
}
