package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/dbx"
	"github.com/dmitrijs2005/bloglist/internal/server/config"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var errDB = errors.New("db down")

func fastHash(p string) (string, error) {
	d, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.MinCost)
	return string(d), err
}

type fixture struct {
	rm    repomanager.RepositoryManager
	users *UserService
	auth  *AuthService
	blogs *BlogService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rm := repomanager.NewMemoryRepositoryManager()
	return newFixtureWith(t, rm)
}

func newFixtureWith(t *testing.T, rm repomanager.RepositoryManager) *fixture {
	t.Helper()
	us := NewUserService(rm)
	us.hashPassword = fastHash
	cfg := &config.Config{SecretKey: "test-secret", TokenValidityDuration: time.Hour}
	return &fixture{
		rm:    rm,
		users: us,
		auth:  NewAuthService(rm, cfg),
		blogs: NewBlogService(rm),
	}
}

// register creates an account and returns the stored user.
func (f *fixture) register(t *testing.T, username string) *models.User {
	t.Helper()
	ctx := context.Background()
	_, err := f.users.Create(ctx, username, "Name "+username, "secret")
	require.NoError(t, err)
	u, err := f.rm.Users(f.rm.DB()).GetByUsername(ctx, username)
	require.NoError(t, err)
	return u
}

func intPtr(v int) *int { return &v }

// failingManager wraps a manager and swaps in failing repositories.
type failingManager struct {
	repomanager.RepositoryManager
	users users.Repository
	blogs blogs.Repository
	txErr error
}

func (m *failingManager) Users(db dbx.DBTX) users.Repository {
	if m.users != nil {
		return m.users
	}
	return m.RepositoryManager.Users(db)
}

func (m *failingManager) Blogs(db dbx.DBTX) blogs.Repository {
	if m.blogs != nil {
		return m.blogs
	}
	return m.RepositoryManager.Blogs(db)
}

func (m *failingManager) InTx(ctx context.Context, fn dbx.TxFunc) error {
	if m.txErr != nil {
		return m.txErr
	}
	return m.RepositoryManager.InTx(ctx, fn)
}

type failingUsersRepo struct {
	users.Repository
	err error
}

func (f *failingUsersRepo) GetByUsername(context.Context, string) (*models.User, error) {
	return nil, f.err
}

func (f *failingUsersRepo) GetByID(context.Context, string) (*models.User, error) {
	return nil, f.err
}

func (f *failingUsersRepo) List(context.Context) ([]*models.User, error) {
	return nil, f.err
}

type failingBlogsRepo struct {
	blogs.Repository
	err error
}

func (f *failingBlogsRepo) List(context.Context) ([]*models.Blog, error) {
	return nil, f.err
}

func (f *failingBlogsRepo) GetByID(context.Context, string) (*models.Blog, error) {
	return nil, f.err
}
