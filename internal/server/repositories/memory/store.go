// Package memory is a process-local store for development and tests. It
// mirrors the PostgreSQL schema rules: unique usernames, owner links that
// disappear together with their blog, and all-or-nothing transactions.
package memory

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/dbx"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/users"
)

var errNoSQL = errors.New("memory store does not execute SQL")

// handle is the DBTX vended by Store. It carries no connection; repositories
// obtained with the transactional handle skip locking because InTx holds it.
type handle struct {
	inTx bool
}

func (handle) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, errNoSQL
}

func (handle) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errNoSQL
}

func (handle) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

var (
	pool = handle{}
	tx   = handle{inTx: true}
)

type Store struct {
	mu sync.RWMutex

	users     map[string]*models.User
	userOrder []string
	blogs     map[string]*models.Blog
	blogOrder []string

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]*models.User),
		blogs: make(map[string]*models.Blog),
		now:   time.Now,
	}
}

func (s *Store) RunMigrations(context.Context) error { return nil }

func (s *Store) DB() dbx.DBTX { return pool }

func (s *Store) Users(db dbx.DBTX) users.Repository {
	return &userRepo{s: s, inTx: isTx(db)}
}

func (s *Store) Blogs(db dbx.DBTX) blogs.Repository {
	return &blogRepo{s: s, inTx: isTx(db)}
}

func isTx(db dbx.DBTX) bool {
	h, ok := db.(handle)
	return ok && h.inTx
}

// InTx runs fn with exclusive access to the store. When fn fails or panics
// every change it made is discarded. Repositories used inside fn must be
// obtained with the handle fn receives.
func (s *Store) InTx(ctx context.Context, fn dbx.TxFunc) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	defer func() {
		if p := recover(); p != nil {
			s.restore(snap)
			panic(p)
		}
		if err != nil {
			s.restore(snap)
		}
	}()

	return fn(ctx, tx)
}

type snapshot struct {
	users     map[string]*models.User
	userOrder []string
	blogs     map[string]*models.Blog
	blogOrder []string
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		users:     make(map[string]*models.User, len(s.users)),
		userOrder: append([]string(nil), s.userOrder...),
		blogs:     make(map[string]*models.Blog, len(s.blogs)),
		blogOrder: append([]string(nil), s.blogOrder...),
	}
	for id, u := range s.users {
		snap.users[id] = cloneUser(u)
	}
	for id, b := range s.blogs {
		snap.blogs[id] = cloneBlog(b)
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.userOrder = snap.userOrder
	s.blogs = snap.blogs
	s.blogOrder = snap.blogOrder
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.BlogIDs = append([]string(nil), u.BlogIDs...)
	return &c
}

func cloneBlog(b *models.Blog) *models.Blog {
	c := *b
	return &c
}

func removeString(list []string, v string) []string {
	out := list[:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

// locker returns the lock/unlock pair for a repository, or no-ops when the
// caller already runs inside InTx.
func (s *Store) locker(inTx bool, write bool) func() {
	if inTx {
		return func() {}
	}
	if write {
		s.mu.Lock()
		return s.mu.Unlock
	}
	s.mu.RLock()
	return s.mu.RUnlock
}
