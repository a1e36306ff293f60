package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bloglist/internal/dbx"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/repomanager"
)

// TestingService backs the test-mode endpoints used by end-to-end suites.
type TestingService struct {
	repomanager repomanager.RepositoryManager
}

func NewTestingService(m repomanager.RepositoryManager) *TestingService {
	return &TestingService{repomanager: m}
}

// Reset wipes every blog and user.
func (s *TestingService) Reset(ctx context.Context) error {
	return s.repomanager.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Blogs(tx).DeleteAll(ctx); err != nil {
			return fmt.Errorf("error deleting blogs: %w", err)
		}
		if err := s.repomanager.Users(tx).DeleteAll(ctx); err != nil {
			return fmt.Errorf("error deleting users: %w", err)
		}
		return nil
	})
}
