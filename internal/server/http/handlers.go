package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/bloglist/internal/server/metrics"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/dmitrijs2005/bloglist/internal/server/services"
	"github.com/gin-gonic/gin"
)

type UserService interface {
	Create(ctx context.Context, username, name, password string) (*models.UserProfile, error)
	List(ctx context.Context) ([]*models.UserProfile, error)
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type AuthService interface {
	Authenticator
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
}

type BlogService interface {
	List(ctx context.Context) ([]*models.BlogDetails, error)
	Get(ctx context.Context, id string) (*models.BlogDetails, error)
	Create(ctx context.Context, in services.BlogInput, owner *models.User) (*models.BlogDetails, error)
	Update(ctx context.Context, id string, in services.BlogInput) (*models.BlogDetails, error)
	Delete(ctx context.Context, id string, caller *models.User) error
}

type Resetter interface {
	Reset(ctx context.Context) error
}

type Handler struct {
	users   UserService
	auth    AuthService
	blogs   BlogService
	testing Resetter
}

func NewHandler(us UserService, as AuthService, bs BlogService, ts Resetter) *Handler {
	return &Handler{users: us, auth: as, blogs: bs, testing: ts}
}

// bindJSON decodes the body into dst. An empty body leaves dst zeroed.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return errMalformedBody
	}
	return nil
}

func (h *Handler) listUsers(c *gin.Context) {
	list, err := h.users.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]userResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toUserResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	p, err := h.users.Create(c.Request.Context(), req.Username, req.Name, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(p))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	metrics.TokensIssued.Inc()
	c.JSON(http.StatusOK, loginResponse{Token: res.Token, Username: res.Username, Name: res.Name})
}

func (h *Handler) listBlogs(c *gin.Context) {
	list, err := h.blogs.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]blogResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toBlogResponse(d))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getBlog(c *gin.Context) {
	d, err := h.blogs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toBlogResponse(d))
}

func (h *Handler) createBlog(c *gin.Context) {
	var req blogRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	d, err := h.blogs.Create(c.Request.Context(), req.input(), identity(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	metrics.BlogsCreated.Inc()
	c.JSON(http.StatusCreated, toBlogResponse(d))
}

func (h *Handler) updateBlog(c *gin.Context) {
	var req blogRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	d, err := h.blogs.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toBlogResponse(d))
}

func (h *Handler) deleteBlog(c *gin.Context) {
	if err := h.blogs.Delete(c.Request.Context(), c.Param("id"), identity(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) testingStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Testing API is working"})
}

func (h *Handler) reset(c *gin.Context) {
	if err := h.testing.Reset(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func unknownEndpoint(c *gin.Context) {
	_ = c.Error(errUnknownEndpoint)
}
