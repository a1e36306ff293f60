package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bloglist/internal/client/client"
	"github.com/dmitrijs2005/bloglist/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for username, name and password and creates the account.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, username, name, password); err != nil {
		a.notifications.Error(err.Error())
		return err
	}

	a.notifications.Info(fmt.Sprintf("user %s created, you can log in now", username))
	return nil
}

// Login prompts for credentials and stores the session on success.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.notifications.Error("wrong username or password")
		} else {
			a.notifications.Error(err.Error())
		}
		return err
	}

	a.session = s
	a.notifications.Info(fmt.Sprintf("welcome %s", s.DisplayName()))
	return nil
}

// Logout forgets the session locally and on disk.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.notifications.Error(err.Error())
		return err
	}
	a.session = nil
	a.notifications.Info("logged out")
	return nil
}
