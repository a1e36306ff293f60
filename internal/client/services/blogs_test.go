package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bloglist/internal/client/client"
	"github.com/dmitrijs2005/bloglist/internal/client/models"
)

var rootSession = &models.Session{Token: "tok", Username: "root", Name: "Superuser"}

func TestList_SortedByLikesDescending(t *testing.T) {
	fc := &fakeClient{Blogs: []*models.Blog{
		{ID: "a", Likes: 2},
		{ID: "b", Likes: 10},
		{ID: "c", Likes: 2},
		{ID: "d", Likes: 5},
	}}
	list, err := NewBlogService(fc).List(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, b := range list {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
}

func TestList_Error(t *testing.T) {
	fc := &fakeClient{ListErr: client.ErrUnavailable}
	_, err := NewBlogService(fc).List(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)
}

func TestCreate(t *testing.T) {
	fc := &fakeClient{CreateRet: &models.Blog{ID: "1", Title: "t", URL: "u"}}
	b, err := NewBlogService(fc).Create(context.Background(), rootSession, models.NewBlog{Title: " t ", URL: "u"})
	require.NoError(t, err)

	assert.Equal(t, "tok", fc.CreateToken)
	assert.Equal(t, "t", fc.LastCreate.Title)
	require.NotNil(t, b.User)
	assert.Equal(t, "root", b.User.Username)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewBlogService(&fakeClient{})

	_, err := svc.Create(context.Background(), nil, models.NewBlog{Title: "t", URL: "u"})
	require.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = svc.Create(context.Background(), rootSession, models.NewBlog{Title: "t"})
	require.ErrorIs(t, err, ErrTitleURLRequired)
}

func TestLike_IncrementsAndKeepsOwner(t *testing.T) {
	fc := &fakeClient{}
	orig := &models.Blog{ID: "1", Title: "t", URL: "u", Likes: 4, User: &models.Owner{Username: "root"}}

	got, err := NewBlogService(fc).Like(context.Background(), orig)
	require.NoError(t, err)

	assert.Equal(t, 5, fc.LastUpdate.Likes)
	assert.Equal(t, 5, got.Likes)
	assert.Equal(t, 4, orig.Likes, "input is not mutated")
	require.NotNil(t, got.User)
	assert.Equal(t, "root", got.User.Username)
}

func TestLike_Error(t *testing.T) {
	fc := &fakeClient{UpdateErr: client.ErrNotFound}
	_, err := NewBlogService(fc).Like(context.Background(), &models.Blog{ID: "1"})
	require.ErrorIs(t, err, client.ErrNotFound)
}

func TestLike_StopsAtLimit(t *testing.T) {
	fc := &fakeClient{}
	svc := NewBlogService(fc)

	got, err := svc.Like(context.Background(), &models.Blog{ID: "1", Likes: MaxLikes - 1})
	require.NoError(t, err)
	assert.Equal(t, MaxLikes, got.Likes)

	fc.LastUpdate = nil
	_, err = svc.Like(context.Background(), &models.Blog{ID: "1", Likes: MaxLikes})
	require.ErrorIs(t, err, ErrLikesLimit)
	assert.Nil(t, fc.LastUpdate, "nothing is sent")
}

func TestDelete_OnlyOwner(t *testing.T) {
	fc := &fakeClient{}
	svc := NewBlogService(fc)
	ctx := context.Background()

	other := &models.Blog{ID: "1", User: &models.Owner{Username: "mluukkai"}}
	require.ErrorIs(t, svc.Delete(ctx, rootSession, other), ErrNotOwner)
	assert.Empty(t, fc.DeletedID)

	own := &models.Blog{ID: "2", User: &models.Owner{Username: "root"}}
	require.NoError(t, svc.Delete(ctx, rootSession, own))
	assert.Equal(t, "2", fc.DeletedID)
	assert.Equal(t, "tok", fc.DeleteToken)

	require.ErrorIs(t, svc.Delete(ctx, nil, own), ErrNotLoggedIn)
}
