package services

import (
	"cmp"
	"context"
	"errors"
	"math"
	"slices"
	"strings"

	"github.com/dmitrijs2005/bloglist/internal/client/client"
	"github.com/dmitrijs2005/bloglist/internal/client/models"
)

var (
	ErrNotLoggedIn      = errors.New("log in first")
	ErrNotOwner         = errors.New("only the creator can remove a blog")
	ErrTitleURLRequired = errors.New("title and url are required")
	ErrLikesLimit       = errors.New("this blog cannot take more likes")
)

// MaxLikes is the largest like count the server accepts.
const MaxLikes = math.MaxInt32

type BlogService interface {
	// List returns every blog, most liked first.
	List(ctx context.Context) ([]*models.Blog, error)
	Create(ctx context.Context, s *models.Session, in models.NewBlog) (*models.Blog, error)
	// Like stores b with one more like and returns the server's copy.
	Like(ctx context.Context, b *models.Blog) (*models.Blog, error)
	// Delete removes b; only its creator may do so.
	Delete(ctx context.Context, s *models.Session, b *models.Blog) error
}

type blogService struct {
	client client.Client
}

func NewBlogService(c client.Client) BlogService {
	return &blogService{client: c}
}

// SortByLikes orders blogs by likes descending, keeping the server's order
// among equals.
func SortByLikes(blogs []*models.Blog) {
	slices.SortStableFunc(blogs, func(a, b *models.Blog) int {
		return cmp.Compare(b.Likes, a.Likes)
	})
}

func (s *blogService) List(ctx context.Context) ([]*models.Blog, error) {
	list, err := s.client.ListBlogs(ctx)
	if err != nil {
		return nil, err
	}
	SortByLikes(list)
	return list, nil
}

func (s *blogService) Create(ctx context.Context, sess *models.Session, in models.NewBlog) (*models.Blog, error) {
	if sess == nil {
		return nil, ErrNotLoggedIn
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.URL = strings.TrimSpace(in.URL)
	if in.Title == "" || in.URL == "" {
		return nil, ErrTitleURLRequired
	}

	b, err := s.client.CreateBlog(ctx, sess.Token, in)
	if err != nil {
		return nil, err
	}
	if b.User == nil {
		b.User = &models.Owner{Username: sess.Username, Name: sess.Name}
	}
	return b, nil
}

func (s *blogService) Like(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	if b.Likes >= MaxLikes {
		return nil, ErrLikesLimit
	}
	liked := *b
	liked.Likes++

	updated, err := s.client.UpdateBlog(ctx, &liked)
	if err != nil {
		return nil, err
	}
	if updated.User == nil {
		updated.User = b.User
	}
	return updated, nil
}

func (s *blogService) Delete(ctx context.Context, sess *models.Session, b *models.Blog) error {
	if sess == nil {
		return ErrNotLoggedIn
	}
	if !b.OwnedBy(sess.Username) {
		return ErrNotOwner
	}
	return s.client.DeleteBlog(ctx, sess.Token, b.ID)
}
