package repomanager

import (
	"context"

	"github.com/dmitrijs2005/bloglist/internal/dbx"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a handle: the shared pool
// returned by DB, or the transactional handle InTx passes to its callback.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	DB() dbx.DBTX
	Users(db dbx.DBTX) users.Repository
	Blogs(db dbx.DBTX) blogs.Repository
	InTx(ctx context.Context, fn dbx.TxFunc) error
}
