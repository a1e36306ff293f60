// Package stats computes directory-wide aggregates over a snapshot of blogs.
// Every function is pure; ties go to whichever record or author reached the
// winning value first while scanning in input order.
package stats

import "github.com/dmitrijs2005/bloglist/internal/server/models"

type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

func TotalLikes(blogs []*models.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for no blogs.
func FavoriteBlog(blogs []*models.Blog) *models.Blog {
	var fav *models.Blog
	for _, b := range blogs {
		if fav == nil || b.Likes > fav.Likes {
			fav = b
		}
	}
	return fav
}

// MostBlogs returns the author with the most blogs, or nil for no blogs.
func MostBlogs(blogs []*models.Blog) *AuthorBlogs {
	counts := make(map[string]int)
	var best *AuthorBlogs
	for _, b := range blogs {
		counts[b.Author]++
		if best == nil || counts[b.Author] > best.Blogs {
			best = &AuthorBlogs{Author: b.Author, Blogs: counts[b.Author]}
		}
	}
	return best
}

// MostLikes returns the author with the highest summed likes, or nil for no
// blogs.
func MostLikes(blogs []*models.Blog) *AuthorLikes {
	sums := make(map[string]int)
	var best *AuthorLikes
	for _, b := range blogs {
		sums[b.Author] += b.Likes
		if best == nil || sums[b.Author] > best.Likes {
			best = &AuthorLikes{Author: b.Author, Likes: sums[b.Author]}
		}
	}
	return best
}

// FavoriteSummary is the reported shape of the favorite blog.
type FavoriteSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// Summary bundles every aggregate of one snapshot.
type Summary struct {
	Blogs        int              `json:"blogs"`
	TotalLikes   int              `json:"totalLikes"`
	FavoriteBlog *FavoriteSummary `json:"favoriteBlog"`
	MostBlogs    *AuthorBlogs     `json:"mostBlogs"`
	MostLikes    *AuthorLikes     `json:"mostLikes"`
}

func Summarize(blogs []*models.Blog) Summary {
	s := Summary{
		Blogs:      len(blogs),
		TotalLikes: TotalLikes(blogs),
		MostBlogs:  MostBlogs(blogs),
		MostLikes:  MostLikes(blogs),
	}
	if fav := FavoriteBlog(blogs); fav != nil {
		s.FavoriteBlog = &FavoriteSummary{ID: fav.ID, Title: fav.Title, Author: fav.Author, URL: fav.URL, Likes: fav.Likes}
	}
	return s
}
