package report

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/bloglist/internal/logging"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bloglist/internal/server/services"

	cfg "github.com/dmitrijs2005/bloglist/internal/server/config"
)

// Options selects what Run does around the generated report. Migrate
// brings the schema up to date first; by default the store is only read.
type Options struct {
	Upload  bool
	Migrate bool
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

func openStore(c *cfg.Config) (repomanager.RepositoryManager, func() error, error) {
	if c.UsesMemoryStore() {
		return repomanager.NewMemoryRepositoryManager(), func() error { return nil }, nil
	}
	db, err := sqlOpen("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}
	return repomanager.NewPostgresRepositoryManager(db), db.Close, nil
}

// Run generates a report from the configured store, writes it to w and,
// when asked, uploads it to object storage.
func Run(ctx context.Context, c *cfg.Config, logger logging.Logger, opts Options, w io.Writer) error {
	rm, closeStore, err := openStore(c)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn(ctx, "error closing store", "error", err)
		}
	}()

	if opts.Migrate {
		if err := rm.RunMigrations(ctx); err != nil {
			return fmt.Errorf("migrations error: %w", err)
		}
	}

	svc := NewService(services.NewBlogService(rm), c, logger)

	r, err := svc.Generate(ctx)
	if err != nil {
		return err
	}

	if err := Write(w, r); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	if !opts.Upload {
		return nil
	}

	key, err := svc.Upload(ctx, r)
	if err != nil {
		return fmt.Errorf("error uploading report: %w", err)
	}
	logger.Info(ctx, "report stored", "key", key)
	return nil
}
