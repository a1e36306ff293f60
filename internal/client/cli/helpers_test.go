package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/client/config"
	"github.com/dmitrijs2005/bloglist/internal/client/models"
	"github.com/dmitrijs2005/bloglist/internal/client/notify"
)

type fakeAuth struct {
	regUser, regName string
	regPass          []byte
	regErr           error

	loginUser string
	loginPass []byte
	loginRet  *models.Session
	loginErr  error

	restoreRet *models.Session
	restoreErr error

	logoutCalled bool
	logoutErr    error

	pingErr error
}

func (f *fakeAuth) Register(_ context.Context, user, name string, pass []byte) error {
	f.regUser, f.regName, f.regPass = user, name, append([]byte(nil), pass...)
	return f.regErr
}
func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) (*models.Session, error) {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	return f.loginRet, f.loginErr
}
func (f *fakeAuth) Restore(context.Context) (*models.Session, error) {
	return f.restoreRet, f.restoreErr
}
func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuth) Ping(context.Context) error { return f.pingErr }

type fakeBlogs struct {
	list    []*models.Blog
	listErr error

	created   models.NewBlog
	createErr error

	liked   *models.Blog
	likeErr error

	deleted   *models.Blog
	deleteErr error
}

func (f *fakeBlogs) List(context.Context) ([]*models.Blog, error) {
	return f.list, f.listErr
}
func (f *fakeBlogs) Create(_ context.Context, s *models.Session, in models.NewBlog) (*models.Blog, error) {
	f.created = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Blog{ID: "new", Title: in.Title, Author: in.Author, URL: in.URL, User: &models.Owner{Username: s.Username}}, nil
}
func (f *fakeBlogs) Like(_ context.Context, b *models.Blog) (*models.Blog, error) {
	f.liked = b
	if f.likeErr != nil {
		return nil, f.likeErr
	}
	out := *b
	out.Likes++
	return &out, nil
}
func (f *fakeBlogs) Delete(_ context.Context, _ *models.Session, b *models.Blog) error {
	f.deleted = b
	return f.deleteErr
}

func newTestApp(t *testing.T, input string) (*App, *fakeAuth, *fakeBlogs, *bytes.Buffer) {
	t.Helper()
	fa, fb := &fakeAuth{}, &fakeBlogs{}
	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.OnlineCheckInterval = time.Hour

	a := &App{
		config:        cfg,
		authService:   fa,
		blogService:   fb,
		notifications: notify.NewSlot(time.Hour),
		reader:        bufio.NewReader(strings.NewReader(input)),
		out:           out,
	}
	t.Cleanup(a.notifications.Stop)
	return a, fa, fb, out
}

func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
}

func notification(t *testing.T, a *App) notify.Notification {
	t.Helper()
	n, ok := a.notifications.Current()
	if !ok {
		t.Fatalf("expected a notification")
	}
	return n
}
