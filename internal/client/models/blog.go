// Package models holds the client-side view of the blog list API.
package models

import "time"

// Owner is the embedded creator of a blog as returned by the API.
type Owner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Blog is one entry of the blog list.
type Blog struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	User   *Owner `json:"user,omitempty"`
}

// OwnedBy reports whether username created b.
func (b *Blog) OwnedBy(username string) bool {
	return b.User != nil && username != "" && b.User.Username == username
}

func (b *Blog) String() string {
	s := b.Title
	if b.Author != "" {
		s += " " + b.Author
	}
	return s
}

// NewBlog is the payload for creating a blog.
type NewBlog struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// Session is the persisted login state.
type Session struct {
	Token    string    `json:"token"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	SavedAt  time.Time `json:"-"`
}

// DisplayName is the name shown in the prompt.
func (s *Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Username
}
