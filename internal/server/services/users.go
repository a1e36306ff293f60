package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/server/auth"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

const minCredentialLength = 3

var (
	ErrCredentialsRequired = common.NewError(common.KindValidation, "username and password are required")
	ErrCredentialsTooShort = common.NewError(common.KindValidation, "username and password must be at least 3 characters long")
	ErrPasswordTooLong     = common.NewError(common.KindValidation, "password must be at most 72 bytes long")
)

type UserService struct {
	repomanager  repomanager.RepositoryManager
	hashPassword func(string) (string, error)
}

func NewUserService(m repomanager.RepositoryManager) *UserService {
	return &UserService{repomanager: m, hashPassword: auth.HashPassword}
}

// Create registers an account. The returned profile never carries password
// material.
func (s *UserService) Create(ctx context.Context, username, name, password string) (*models.UserProfile, error) {
	if username == "" || password == "" {
		return nil, ErrCredentialsRequired
	}
	if utf8.RuneCountInString(username) < minCredentialLength || utf8.RuneCountInString(password) < minCredentialLength {
		return nil, ErrCredentialsTooShort
	}

	repo := s.repomanager.Users(s.repomanager.DB())

	// fast path only, the unique constraint decides
	_, err := repo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, users.ErrUsernameTaken
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	digest, err := s.hashPassword(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := repo.Create(ctx, &models.User{Username: username, Name: name, PasswordHash: digest})
	if err != nil {
		if common.KindOf(err) == common.KindConflict {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &models.UserProfile{UserSummary: user.Summary(), Blogs: []models.BlogSummary{}}, nil
}

// List returns every account with the blogs it authored, in authoring order.
func (s *UserService) List(ctx context.Context) ([]*models.UserProfile, error) {
	db := s.repomanager.DB()

	list, err := s.repomanager.Users(db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	all, err := s.repomanager.Blogs(db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing blogs: %w", err)
	}

	byID := make(map[string]*models.Blog, len(all))
	for _, b := range all {
		byID[b.ID] = b
	}

	profiles := make([]*models.UserProfile, 0, len(list))
	for _, u := range list {
		p := &models.UserProfile{UserSummary: u.Summary(), Blogs: make([]models.BlogSummary, 0, len(u.BlogIDs))}
		for _, id := range u.BlogIDs {
			if b, ok := byID[id]; ok {
				p.Blogs = append(p.Blogs, b.Summary())
			}
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}
