package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/bloglist/internal/client/models"
)

var errNoSuchBlog = errors.New("no such blog, run list first")

// List fetches the blogs, prints them numbered and remembers the order for
// like and delete.
func (a *App) List(ctx context.Context) error {
	blogs, err := a.blogService.List(ctx)
	if err != nil {
		a.notifications.Error(err.Error())
		return err
	}
	a.blogs = blogs

	if len(blogs) == 0 {
		fmt.Fprintln(a.out, "no blogs yet")
		return nil
	}
	for i, b := range blogs {
		owner := ""
		if b.User != nil {
			owner = b.User.Name
			if owner == "" {
				owner = b.User.Username
			}
		}
		mark := ""
		if a.session != nil && b.OwnedBy(a.session.Username) {
			mark = " *"
		}
		fmt.Fprintf(a.out, "%2d. %s%s\n    %s\n    likes %d   added by %s\n", i+1, b, mark, b.URL, b.Likes, owner)
	}
	return nil
}

// Create prompts for a new blog and submits it.
func (a *App) Create(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	author, err := getSimpleText(a.reader, "Author", a.out)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "URL", a.out)
	if err != nil {
		return err
	}

	b, err := a.blogService.Create(ctx, a.session, models.NewBlog{Title: title, Author: author, URL: url})
	if err != nil {
		a.notifications.Error(err.Error())
		return err
	}

	a.blogs = append(a.blogs, b)
	a.notifications.Info(fmt.Sprintf("a new blog %s by %s added", b.Title, b.Author))
	return nil
}

// Like adds one like to the blog numbered arg in the last listing.
func (a *App) Like(ctx context.Context, arg string) error {
	i, b, err := a.pick(arg)
	if err != nil {
		a.notifications.Error(err.Error())
		return err
	}

	updated, err := a.blogService.Like(ctx, b)
	if err != nil {
		a.notifications.Error(err.Error())
		return err
	}

	a.blogs[i] = updated
	a.notifications.Info(fmt.Sprintf("liked %s (%d likes)", updated.Title, updated.Likes))
	return nil
}

// Delete removes the blog numbered arg after confirmation.
func (a *App) Delete(ctx context.Context, arg string) error {
	i, b, err := a.pick(arg)
	if err != nil {
		a.notifications.Error(err.Error())
		return err
	}

	ok, err := confirm(a.reader, fmt.Sprintf("Remove blog %s by %s?", b.Title, b.Author), a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.blogService.Delete(ctx, a.session, b); err != nil {
		a.notifications.Error(err.Error())
		return err
	}

	a.blogs = append(a.blogs[:i], a.blogs[i+1:]...)
	a.notifications.Info(fmt.Sprintf("removed %s", b.Title))
	return nil
}

// confirm is a test seam.
var confirm = Confirm

func (a *App) pick(arg string) (int, *models.Blog, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.blogs) {
		return 0, nil, errNoSuchBlog
	}
	return n - 1, a.blogs[n-1], nil
}
