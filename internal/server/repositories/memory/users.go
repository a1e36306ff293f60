package memory

import (
	"context"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/users"
	"github.com/google/uuid"
)

type userRepo struct {
	s    *Store
	inTx bool
}

func (r *userRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	defer r.s.locker(r.inTx, true)()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return nil, users.ErrUsernameTaken
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = r.s.now()
	user.BlogIDs = nil

	r.s.users[user.ID] = cloneUser(user)
	r.s.userOrder = append(r.s.userOrder, user.ID)

	return user, nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	defer r.s.locker(r.inTx, false)()

	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := cloneUser(u)
	c.BlogIDs = nil
	return c, nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	defer r.s.locker(r.inTx, false)()

	for _, u := range r.s.users {
		if u.Username == username {
			c := cloneUser(u)
			c.BlogIDs = nil
			return c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *userRepo) List(_ context.Context) ([]*models.User, error) {
	defer r.s.locker(r.inTx, false)()

	list := make([]*models.User, 0, len(r.s.userOrder))
	for _, id := range r.s.userOrder {
		list = append(list, cloneUser(r.s.users[id]))
	}
	return list, nil
}

func (r *userRepo) AppendBlog(_ context.Context, userID, blogID string) error {
	defer r.s.locker(r.inTx, true)()

	u, ok := r.s.users[userID]
	if !ok {
		return common.ErrorNotFound
	}
	if _, ok := r.s.blogs[blogID]; !ok {
		return common.ErrorNotFound
	}
	for _, id := range u.BlogIDs {
		if id == blogID {
			return nil
		}
	}
	u.BlogIDs = append(u.BlogIDs, blogID)
	return nil
}

func (r *userRepo) RemoveBlog(_ context.Context, userID, blogID string) error {
	defer r.s.locker(r.inTx, true)()

	if u, ok := r.s.users[userID]; ok {
		u.BlogIDs = removeString(u.BlogIDs, blogID)
	}
	return nil
}

// DeleteAll removes every user and, like the foreign key cascade, their blogs.
func (r *userRepo) DeleteAll(_ context.Context) error {
	defer r.s.locker(r.inTx, true)()

	r.s.users = make(map[string]*models.User)
	r.s.userOrder = nil
	r.s.blogs = make(map[string]*models.Blog)
	r.s.blogOrder = nil
	return nil
}
