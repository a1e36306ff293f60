// Package services contains application services for the blog list CLI.
// This file defines the authentication service: login with a persisted
// session, registration, logout and a liveness check.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bloglist/internal/client/client"
	"github.com/dmitrijs2005/bloglist/internal/client/models"
	"github.com/dmitrijs2005/bloglist/internal/client/repositories/session"
	"github.com/dmitrijs2005/bloglist/internal/dbx"
)

var ErrCredentialsRequired = errors.New("username and password are required")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and persist the session.
//   - Restore: return the session saved by an earlier run, if any.
//   - Register: create a new user on the server.
//   - Logout: forget the persisted session.
//   - Ping: check server liveness.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.Session, error)
	Restore(ctx context.Context) (*models.Session, error)
	Register(ctx context.Context, username, name string, password []byte) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

func NewAuthService(c client.Client, db *sql.DB) AuthService {
	return &authService{client: c, db: db}
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) == 0 {
		return nil, ErrCredentialsRequired
	}

	s, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		return repo.Save(ctx, s)
	})
	if err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return s, nil
}

func (a *authService) Restore(ctx context.Context) (*models.Session, error) {
	return session.NewSQLiteRepository(a.db).Load(ctx)
}

func (a *authService) Register(ctx context.Context, username, name string, password []byte) error {
	username = strings.TrimSpace(username)
	if username == "" || len(password) == 0 {
		return ErrCredentialsRequired
	}
	return a.client.Register(ctx, username, strings.TrimSpace(name), string(password))
}

func (a *authService) Logout(ctx context.Context) error {
	return session.NewSQLiteRepository(a.db).Clear(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
