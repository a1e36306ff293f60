package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/dbx"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var (
	ErrBlogNotFound     = common.NewError(common.KindNotFound, "blog not found")
	ErrTokenMissing     = common.NewError(common.KindUnauthenticated, "token missing")
	ErrNotBlogOwner     = common.NewError(common.KindForbidden, "only the creator can delete a blog")
	ErrTitleURLRequired = common.NewError(common.KindValidation, "title and url are required")
	ErrNegativeLikes    = common.NewError(common.KindValidation, "likes must be a non-negative integer")
	ErrTooManyLikes     = common.NewError(common.KindValidation, fmt.Sprintf("likes must not exceed %d", MaxLikes))
)

// MaxLikes is the largest like count a blog can store.
const MaxLikes = math.MaxInt32

// BlogInput carries the writable fields of a blog. A nil Likes means zero.
type BlogInput struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

func (in BlogInput) validate() error {
	if in.Title == "" || in.URL == "" {
		return ErrTitleURLRequired
	}
	if in.Likes != nil {
		switch {
		case *in.Likes < 0:
			return ErrNegativeLikes
		case *in.Likes > MaxLikes:
			return ErrTooManyLikes
		}
	}
	return nil
}

func (in BlogInput) likes() int {
	if in.Likes == nil {
		return 0
	}
	return *in.Likes
}

type BlogService struct {
	repomanager repomanager.RepositoryManager
}

func NewBlogService(m repomanager.RepositoryManager) *BlogService {
	return &BlogService{repomanager: m}
}

// checkID validates id and returns it in the canonical lowercase hyphenated
// form the stores key on.
func checkID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", common.WrapError(common.KindInvalidID, common.ErrorInvalidID.Message, err)
	}
	return u.String(), nil
}

func (s *BlogService) List(ctx context.Context) ([]*models.BlogDetails, error) {
	db := s.repomanager.DB()

	list, err := s.repomanager.Blogs(db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing blogs: %w", err)
	}

	owners, err := s.repomanager.Users(db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	byID := make(map[string]models.UserSummary, len(owners))
	for _, u := range owners {
		byID[u.ID] = u.Summary()
	}

	out := make([]*models.BlogDetails, 0, len(list))
	for _, b := range list {
		d := &models.BlogDetails{Blog: *b}
		if o, ok := byID[b.UserID]; ok {
			d.Owner = &o
		}
		out = append(out, d)
	}

	return out, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (*models.BlogDetails, error) {
	id, err := checkID(id)
	if err != nil {
		return nil, err
	}

	b, err := s.repomanager.Blogs(s.repomanager.DB()).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("error getting blog: %w", err)
	}

	return s.withOwner(ctx, b)
}

// Create stores a blog owned by owner and appends it to the owner's list in
// the same transaction.
func (s *BlogService) Create(ctx context.Context, in BlogInput, owner *models.User) (*models.BlogDetails, error) {
	if owner == nil {
		return nil, ErrTokenMissing
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	blog := &models.Blog{
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  in.likes(),
		UserID: owner.ID,
	}

	err := s.repomanager.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		blog, err = s.repomanager.Blogs(tx).Create(ctx, blog)
		if err != nil {
			return fmt.Errorf("error creating blog: %w", err)
		}
		if err := s.repomanager.Users(tx).AppendBlog(ctx, owner.ID, blog.ID); err != nil {
			return fmt.Errorf("error linking blog to owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := owner.Summary()
	return &models.BlogDetails{Blog: *blog, Owner: &summary}, nil
}

// Update replaces title, author, url and likes. Any caller may update.
func (s *BlogService) Update(ctx context.Context, id string, in BlogInput) (*models.BlogDetails, error) {
	id, err := checkID(id)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	b, err := s.repomanager.Blogs(s.repomanager.DB()).Update(ctx, &models.Blog{
		ID:     id,
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  in.likes(),
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("error updating blog: %w", err)
	}

	return s.withOwner(ctx, b)
}

// Delete removes the blog if caller owns it, together with its entry in the
// owner's list.
func (s *BlogService) Delete(ctx context.Context, id string, caller *models.User) error {
	id, err := checkID(id)
	if err != nil {
		return err
	}
	if caller == nil {
		return ErrTokenMissing
	}

	return s.repomanager.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		blogs := s.repomanager.Blogs(tx)

		b, err := blogs.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return ErrBlogNotFound
			}
			return fmt.Errorf("error getting blog: %w", err)
		}

		if b.UserID != caller.ID {
			return ErrNotBlogOwner
		}

		if err := s.repomanager.Users(tx).RemoveBlog(ctx, b.UserID, b.ID); err != nil {
			return fmt.Errorf("error unlinking blog: %w", err)
		}
		if err := blogs.Delete(ctx, b.ID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return ErrBlogNotFound
			}
			return fmt.Errorf("error deleting blog: %w", err)
		}
		return nil
	})
}

// Snapshot returns every blog in creation order.
func (s *BlogService) Snapshot(ctx context.Context) ([]*models.Blog, error) {
	list, err := s.repomanager.Blogs(s.repomanager.DB()).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing blogs: %w", err)
	}
	return list, nil
}

func (s *BlogService) withOwner(ctx context.Context, b *models.Blog) (*models.BlogDetails, error) {
	d := &models.BlogDetails{Blog: *b}

	owner, err := s.repomanager.Users(s.repomanager.DB()).GetByID(ctx, b.UserID)
	switch {
	case err == nil:
		summary := owner.Summary()
		d.Owner = &summary
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error resolving blog owner: %w", err)
	}

	return d, nil
}
