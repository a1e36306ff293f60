package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/client/client"
	"github.com/dmitrijs2005/bloglist/internal/client/config"
	"github.com/dmitrijs2005/bloglist/internal/client/models"
	"github.com/dmitrijs2005/bloglist/internal/client/notify"
	"github.com/dmitrijs2005/bloglist/internal/client/services"
	"github.com/dmitrijs2005/bloglist/internal/filex"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config        *config.Config
	authService   services.AuthService
	blogService   services.BlogService
	notifications *notify.Slot
	session       *models.Session
	blogs         []*models.Blog
	reader        *bufio.Reader
	out           io.Writer

	mu   sync.Mutex
	mode Mode
}

// NewApp opens the local database under c.DataDir and connects the services
// to the API at c.ServerURL.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	dir, err := filex.EnsureDataDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, config.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)

	return &App{
		config:        c,
		authService:   services.NewAuthService(api, db),
		blogService:   services.NewBlogService(api),
		notifications: notify.NewSlot(c.NotificationDuration),
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = mode
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// getStatus renders the prompt decoration: user, connectivity and the
// current notification.
func (a *App) getStatus() string {
	s := ""
	if a.session != nil {
		s = a.session.DisplayName() + " logged in"
	}
	if m := a.getMode(); m != "" {
		if s != "" {
			s += ", "
		}
		s += string(m)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	if n, ok := a.notifications.Current(); ok {
		s += fmt.Sprintf(" [%s: %s]", n.Kind, n.Message)
	}
	return s
}

// StartOnlineStatusWatcher pings the server every interval until ctx ends.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// Run restores the saved session and runs the REPL until the user exits or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.notifications.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Blog list CLI (type 'help' for commands)")

	s, err := a.authService.Restore(ctx)
	if err != nil {
		a.notifications.Error(err.Error())
	} else if s != nil {
		a.session = s
	}

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader), a.out)
}
