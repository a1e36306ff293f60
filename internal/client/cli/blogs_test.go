package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bloglist/internal/client/client"
	"github.com/dmitrijs2005/bloglist/internal/client/models"
	"github.com/dmitrijs2005/bloglist/internal/client/notify"
)

func sampleBlogs() []*models.Blog {
	return []*models.Blog{
		{ID: "1", Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://a", Likes: 12, User: &models.Owner{Username: "root", Name: "Superuser"}},
		{ID: "2", Title: "React patterns", Author: "Michael Chan", URL: "http://b", Likes: 7, User: &models.Owner{Username: "mluukkai"}},
	}
}

func stubConfirm(t *testing.T, answer bool) *int {
	t.Helper()
	orig := confirm
	t.Cleanup(func() { confirm = orig })
	calls := 0
	confirm = func(*bufio.Reader, string, io.Writer) (bool, error) {
		calls++
		return answer, nil
	}
	return &calls
}

func TestList_PrintsNumberedAndMarksOwn(t *testing.T) {
	a, _, fb, out := newTestApp(t, "")
	fb.list = sampleBlogs()
	a.session = &models.Session{Username: "root"}

	require.NoError(t, a.List(context.Background()))
	s := out.String()
	assert.Contains(t, s, " 1. Canonical string reduction Edsger W. Dijkstra *")
	assert.Contains(t, s, "likes 12   added by Superuser")
	assert.Contains(t, s, " 2. React patterns Michael Chan\n")
	assert.Contains(t, s, "added by mluukkai")
	assert.Len(t, a.blogs, 2)
}

func TestList_Empty(t *testing.T) {
	a, _, _, out := newTestApp(t, "")
	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "no blogs yet")
}

func TestList_Error(t *testing.T) {
	a, _, fb, _ := newTestApp(t, "")
	fb.listErr = client.ErrUnavailable

	require.ErrorIs(t, a.List(context.Background()), client.ErrUnavailable)
	assert.Equal(t, notify.Error, notification(t, a).Kind)
}

func TestCreate(t *testing.T) {
	a, _, fb, _ := newTestApp(t, "")
	a.session = &models.Session{Token: "tok", Username: "root"}
	stubInputs(t, []string{"Type wars", "Robert C. Martin", "http://blog.cleancoder.com"}, nil)

	require.NoError(t, a.Create(context.Background()))
	assert.Equal(t, models.NewBlog{Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com"}, fb.created)
	assert.Equal(t, "a new blog Type wars by Robert C. Martin added", notification(t, a).Message)
	require.Len(t, a.blogs, 1)
}

func TestLike(t *testing.T) {
	a, _, fb, _ := newTestApp(t, "")
	a.blogs = sampleBlogs()

	require.NoError(t, a.Like(context.Background(), "2"))
	assert.Equal(t, "2", fb.liked.ID)
	assert.Equal(t, 8, a.blogs[1].Likes)
}

func TestLike_BadIndex(t *testing.T) {
	a, _, fb, _ := newTestApp(t, "")
	a.blogs = sampleBlogs()

	for _, arg := range []string{"0", "3", "x"} {
		require.ErrorIs(t, a.Like(context.Background(), arg), errNoSuchBlog)
	}
	assert.Nil(t, fb.liked)
}

func TestDelete_Confirmed(t *testing.T) {
	a, _, fb, _ := newTestApp(t, "")
	a.session = &models.Session{Token: "tok", Username: "root"}
	a.blogs = sampleBlogs()
	calls := stubConfirm(t, true)

	require.NoError(t, a.Delete(context.Background(), "1"))
	assert.Equal(t, 1, *calls)
	assert.Equal(t, "1", fb.deleted.ID)
	require.Len(t, a.blogs, 1)
	assert.Equal(t, "2", a.blogs[0].ID)
}

func TestDelete_Declined(t *testing.T) {
	a, _, fb, _ := newTestApp(t, "")
	a.blogs = sampleBlogs()
	stubConfirm(t, false)

	require.NoError(t, a.Delete(context.Background(), "1"))
	assert.Nil(t, fb.deleted)
	assert.Len(t, a.blogs, 2)
}

func TestDelete_Rejected(t *testing.T) {
	a, _, fb, _ := newTestApp(t, "")
	a.session = &models.Session{Token: "tok", Username: "root"}
	a.blogs = sampleBlogs()
	fb.deleteErr = client.ErrForbidden
	stubConfirm(t, true)

	require.ErrorIs(t, a.Delete(context.Background(), "2"), client.ErrForbidden)
	assert.Len(t, a.blogs, 2)
	assert.Equal(t, notify.Error, notification(t, a).Kind)
}
