package users

import (
	"context"

	"github.com/dmitrijs2005/bloglist/internal/server/models"
)

type Repository interface {
	// Create stores user, assigning an id when empty. A taken username
	// yields a common.KindConflict error.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// List returns every user with BlogIDs filled, oldest first.
	List(ctx context.Context) ([]*models.User, error)
	AppendBlog(ctx context.Context, userID, blogID string) error
	RemoveBlog(ctx context.Context, userID, blogID string) error
	DeleteAll(ctx context.Context) error
}
