package models

import "time"

type Blog struct {
	ID        string
	Title     string
	Author    string
	URL       string
	Likes     int
	UserID    string
	CreatedAt time.Time
}

// Summary returns the short description of b used in user listings.
func (b *Blog) Summary() BlogSummary {
	return BlogSummary{ID: b.ID, Title: b.Title, Author: b.Author, URL: b.URL}
}

type BlogSummary struct {
	ID     string
	Title  string
	Author string
	URL    string
}

// BlogDetails is a blog with its owner resolved. Owner is nil when the
// owning account no longer exists.
type BlogDetails struct {
	Blog
	Owner *UserSummary
}
