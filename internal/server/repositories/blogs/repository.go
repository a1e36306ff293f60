package blogs

import (
	"context"

	"github.com/dmitrijs2005/bloglist/internal/server/models"
)

type Repository interface {
	// Create stores blog, assigning an id when empty.
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	// List returns every blog, oldest first.
	List(ctx context.Context) ([]*models.Blog, error)
	// Update replaces title, author, url and likes of the blog with blog.ID.
	Update(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
