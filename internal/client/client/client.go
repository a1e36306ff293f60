package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/client/models"
	"github.com/dmitrijs2005/bloglist/internal/common"
)

// Client is the subset of the API the CLI uses.
type Client interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, username, name, password string) error
	Login(ctx context.Context, username, password string) (*models.Session, error)
	ListBlogs(ctx context.Context) ([]*models.Blog, error)
	CreateBlog(ctx context.Context, token string, in models.NewBlog) (*models.Blog, error)
	UpdateBlog(ctx context.Context, b *models.Blog) (*models.Blog, error)
	DeleteBlog(ctx context.Context, token, id string) error
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return newAPIError(resp.StatusCode, eb.Error)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil)
}

func (c *HTTPClient) Register(ctx context.Context, username, name, password string) error {
	in := map[string]string{"username": username, "name": name, "password": password}
	return c.do(ctx, http.MethodPost, "/api/users", "", in, nil)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.Session, error) {
	in := map[string]string{"username": username, "password": password}
	var s models.Session
	if err := c.do(ctx, http.MethodPost, "/api/login", "", in, &s); err != nil {
		return nil, err
	}
	if s.Token == "" {
		return nil, errors.New("login response carries no token")
	}
	return &s, nil
}

func (c *HTTPClient) ListBlogs(ctx context.Context) ([]*models.Blog, error) {
	var list []*models.Blog
	if err := c.do(ctx, http.MethodGet, "/api/blogs", "", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateBlog(ctx context.Context, token string, in models.NewBlog) (*models.Blog, error) {
	var b models.Blog
	if err := c.do(ctx, http.MethodPost, "/api/blogs", token, in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBlog replaces the editable fields of b on the server.
func (c *HTTPClient) UpdateBlog(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	in := struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
		Likes  int    `json:"likes"`
	}{b.Title, b.Author, b.URL, b.Likes}

	var out models.Blog
	if err := c.do(ctx, http.MethodPut, "/api/blogs/"+b.ID, "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteBlog(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/blogs/"+id, token, nil, nil)
}
