package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bloglist/internal/client/client"
	"github.com/dmitrijs2005/bloglist/internal/client/models"
	"github.com/dmitrijs2005/bloglist/internal/client/notify"
)

func TestRegister_Success(t *testing.T) {
	a, fa, _, _ := newTestApp(t, "")
	stubInputs(t, []string{"root", "Superuser"}, []byte("salainen"))

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, "root", fa.regUser)
	assert.Equal(t, "Superuser", fa.regName)
	assert.Equal(t, "salainen", string(fa.regPass))
	assert.Equal(t, notify.Info, notification(t, a).Kind)
}

func TestRegister_Error(t *testing.T) {
	a, fa, _, _ := newTestApp(t, "")
	fa.regErr = errors.New("username must be unique")
	stubInputs(t, []string{"root", ""}, []byte("salainen"))

	require.Error(t, a.Register(context.Background()))
	n := notification(t, a)
	assert.Equal(t, notify.Error, n.Kind)
	assert.Equal(t, "username must be unique", n.Message)
}

func TestLogin_Success(t *testing.T) {
	a, fa, _, _ := newTestApp(t, "")
	fa.loginRet = &models.Session{Token: "tok", Username: "root", Name: "Superuser"}
	stubInputs(t, []string{"root"}, []byte("salainen"))

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "root", fa.loginUser)
	assert.Equal(t, "welcome Superuser", notification(t, a).Message)
}

func TestLogin_WrongCredentials(t *testing.T) {
	a, fa, _, _ := newTestApp(t, "")
	fa.loginErr = fmt.Errorf("%w: invalid username or password", client.ErrUnauthorized)
	stubInputs(t, []string{"root"}, []byte("wrong"))

	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
	n := notification(t, a)
	assert.Equal(t, notify.Error, n.Kind)
	assert.Equal(t, "wrong username or password", n.Message)
}

func TestLogin_InputError(t *testing.T) {
	a, _, _, _ := newTestApp(t, "")
	stubInputs(t, nil, nil)

	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestLogout(t *testing.T) {
	a, fa, _, _ := newTestApp(t, "")
	a.session = &models.Session{Token: "tok", Username: "root"}

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, fa.logoutCalled)
	assert.False(t, a.isLoggedIn())
}

func TestLogout_ErrorKeepsSession(t *testing.T) {
	a, fa, _, _ := newTestApp(t, "")
	fa.logoutErr = errors.New("disk full")
	a.session = &models.Session{Token: "tok", Username: "root"}

	require.Error(t, a.Logout(context.Background()))
	assert.True(t, a.isLoggedIn())
}
