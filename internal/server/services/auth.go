package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/server/auth"
	"github.com/dmitrijs2005/bloglist/internal/server/config"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = common.NewError(common.KindUnauthenticated, "invalid username or password")
	ErrUserNotFound       = common.NewError(common.KindUnauthenticated, "user not found")
)

// dummyDigest is compared against when the username is unknown, so both
// failure paths of Login cost one bcrypt comparison.
var dummyDigest = sync.OnceValue(func() string {
	digest, err := auth.HashPassword(uuid.NewString())
	if err != nil {
		panic(err)
	}
	return digest
})

type LoginResult struct {
	Token    string
	Username string
	Name     string
}

type AuthService struct {
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewAuthService(m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	repo := s.repomanager.Users(s.repomanager.DB())

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(password, dummyDigest())
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &LoginResult{Token: token, Username: user.Username, Name: user.Name}, nil
}

// Authenticate resolves a bearer token to its user. Token failures keep
// their kind; a token for a deleted account yields ErrUserNotFound.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	user, err := s.repomanager.Users(s.repomanager.DB()).GetByID(ctx, uid.String())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error resolving token owner: %w", err)
	}

	return user, nil
}
