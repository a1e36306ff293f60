package memory

import (
	"context"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/google/uuid"
)

type blogRepo struct {
	s    *Store
	inTx bool
}

func (r *blogRepo) Create(_ context.Context, blog *models.Blog) (*models.Blog, error) {
	defer r.s.locker(r.inTx, true)()

	if _, ok := r.s.users[blog.UserID]; !ok {
		return nil, common.WrapError(common.KindInternal, "owner does not exist", common.ErrorNotFound)
	}

	if blog.ID == "" {
		blog.ID = uuid.NewString()
	}
	blog.CreatedAt = r.s.now()

	r.s.blogs[blog.ID] = cloneBlog(blog)
	r.s.blogOrder = append(r.s.blogOrder, blog.ID)

	return blog, nil
}

func (r *blogRepo) GetByID(_ context.Context, id string) (*models.Blog, error) {
	defer r.s.locker(r.inTx, false)()

	b, ok := r.s.blogs[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneBlog(b), nil
}

func (r *blogRepo) List(_ context.Context) ([]*models.Blog, error) {
	defer r.s.locker(r.inTx, false)()

	list := make([]*models.Blog, 0, len(r.s.blogOrder))
	for _, id := range r.s.blogOrder {
		list = append(list, cloneBlog(r.s.blogs[id]))
	}
	return list, nil
}

func (r *blogRepo) Update(_ context.Context, blog *models.Blog) (*models.Blog, error) {
	defer r.s.locker(r.inTx, true)()

	b, ok := r.s.blogs[blog.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	b.Title = blog.Title
	b.Author = blog.Author
	b.URL = blog.URL
	b.Likes = blog.Likes

	return cloneBlog(b), nil
}

// Delete removes the blog and its entry in the owner's list.
func (r *blogRepo) Delete(_ context.Context, id string) error {
	defer r.s.locker(r.inTx, true)()

	b, ok := r.s.blogs[id]
	if !ok {
		return common.ErrorNotFound
	}

	if u, ok := r.s.users[b.UserID]; ok {
		u.BlogIDs = removeString(u.BlogIDs, id)
	}
	delete(r.s.blogs, id)
	r.s.blogOrder = removeString(r.s.blogOrder, id)

	return nil
}

func (r *blogRepo) DeleteAll(_ context.Context) error {
	defer r.s.locker(r.inTx, true)()

	for _, u := range r.s.users {
		u.BlogIDs = nil
	}
	r.s.blogs = make(map[string]*models.Blog)
	r.s.blogOrder = nil
	return nil
}
