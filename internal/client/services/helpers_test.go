package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bloglist/internal/client/client"
	"github.com/dmitrijs2005/bloglist/internal/client/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// fakeClient implements client.Client for the service tests.
type fakeClient struct {
	PingErr error

	RegisterErr  error
	LastRegister [3]string

	LoginRet  *models.Session
	LoginErr  error
	LastLogin [2]string

	Blogs   []*models.Blog
	ListErr error

	CreateRet   *models.Blog
	CreateErr   error
	LastCreate  models.NewBlog
	CreateToken string

	UpdateErr  error
	LastUpdate *models.Blog

	DeleteErr   error
	DeletedID   string
	DeleteToken string
}

func (f *fakeClient) Ping(context.Context) error { return f.PingErr }

func (f *fakeClient) Register(_ context.Context, username, name, password string) error {
	f.LastRegister = [3]string{username, name, password}
	return f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, username, password string) (*models.Session, error) {
	f.LastLogin = [2]string{username, password}
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ListBlogs(context.Context) ([]*models.Blog, error) {
	return f.Blogs, f.ListErr
}

func (f *fakeClient) CreateBlog(_ context.Context, token string, in models.NewBlog) (*models.Blog, error) {
	f.CreateToken = token
	f.LastCreate = in
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateBlog(_ context.Context, b *models.Blog) (*models.Blog, error) {
	f.LastUpdate = b
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}
	out := *b
	out.User = nil
	return &out, nil
}

func (f *fakeClient) DeleteBlog(_ context.Context, token, id string) error {
	f.DeleteToken = token
	f.DeletedID = id
	return f.DeleteErr
}
