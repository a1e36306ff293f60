package http

import (
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/dmitrijs2005/bloglist/internal/server/services"
)

type createUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type blogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

func (r blogRequest) input() services.BlogInput {
	return services.BlogInput{Title: r.Title, Author: r.Author, URL: r.URL, Likes: r.Likes}
}

type blogSummaryResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

type userResponse struct {
	ID       string                `json:"id"`
	Username string                `json:"username"`
	Name     string                `json:"name"`
	Blogs    []blogSummaryResponse `json:"blogs"`
}

type ownerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type blogResponse struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	Author string         `json:"author"`
	URL    string         `json:"url"`
	Likes  int            `json:"likes"`
	User   *ownerResponse `json:"user"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func toUserResponse(p *models.UserProfile) userResponse {
	out := userResponse{
		ID:       p.ID,
		Username: p.Username,
		Name:     p.Name,
		Blogs:    make([]blogSummaryResponse, 0, len(p.Blogs)),
	}
	for _, b := range p.Blogs {
		out.Blogs = append(out.Blogs, blogSummaryResponse{ID: b.ID, Title: b.Title, Author: b.Author, URL: b.URL})
	}
	return out
}

func toBlogResponse(d *models.BlogDetails) blogResponse {
	out := blogResponse{
		ID:     d.ID,
		Title:  d.Title,
		Author: d.Author,
		URL:    d.URL,
		Likes:  d.Likes,
	}
	if d.Owner != nil {
		out.User = &ownerResponse{ID: d.Owner.ID, Username: d.Owner.Username, Name: d.Owner.Name}
	}
	return out
}
