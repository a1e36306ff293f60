package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bloglist/internal/client/config"
	"github.com/dmitrijs2005/bloglist/internal/client/models"
)

func TestGetStatus(t *testing.T) {
	a, _, _, _ := newTestApp(t, "")
	assert.Equal(t, "", a.getStatus())

	a.session = &models.Session{Username: "root", Name: "Superuser"}
	a.setMode(ModeOnline)
	assert.Equal(t, "(Superuser logged in, online)", a.getStatus())

	a.notifications.Info("a new blog added")
	assert.Equal(t, "(Superuser logged in, online) [info: a new blog added]", a.getStatus())
}

func TestCheckOnline(t *testing.T) {
	a, fa, _, _ := newTestApp(t, "")

	a.checkOnline(context.Background())
	assert.Equal(t, ModeOnline, a.getMode())

	fa.pingErr = errors.New("down")
	a.checkOnline(context.Background())
	assert.Equal(t, ModeOffline, a.getMode())
}

func TestStartOnlineStatusWatcher_StopsOnCancel(t *testing.T) {
	a, fa, _, _ := newTestApp(t, "")
	fa.pingErr = errors.New("down")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return a.getMode() == ModeOffline }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestRun_RestoresSessionAndExits(t *testing.T) {
	a, fa, _, out := newTestApp(t, "help\nexit\n")
	fa.restoreRet = &models.Session{Token: "tok", Username: "root"}

	a.Run(context.Background())

	assert.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Available commands: (l)ist, create")
	assert.Contains(t, out.String(), "Bye!")
}

func TestNewApp_CreatesDatabaseInDataDir(t *testing.T) {
	tmp := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(old) })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = "state"

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, a)

	_, err = os.Stat(filepath.Join(tmp, "state", config.DatabaseFile))
	require.NoError(t, err)
}

func TestNewApp_AbsoluteDataDir(t *testing.T) {
	cwd := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(cwd))
	t.Cleanup(func() { _ = os.Chdir(old) })

	dataDir := filepath.Join(t.TempDir(), "var", "lib", "bloglist")
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = dataDir

	_, err = NewApp(context.Background(), cfg)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dataDir, config.DatabaseFile))
	entries, err := os.ReadDir(cwd)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is created under the working directory")
}
