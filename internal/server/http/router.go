package http

import (
	"github.com/dmitrijs2005/bloglist/internal/logging"
	"github.com/dmitrijs2005/bloglist/internal/server/metrics"
	"github.com/dmitrijs2005/bloglist/internal/server/services"
	"github.com/gin-gonic/gin"
)

type RouterOptions struct {
	Logger logging.Logger
	// TestMode mounts the destructive /api/testing routes.
	TestMode bool
}

// NewRouter assembles the middleware chain and the routes:
// request id, access log, metrics, recovery, error translation and token
// extraction run for every request; identity resolution only guards the
// routes that create or delete blogs.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop{}
	}

	r := gin.New()
	r.Use(
		RequestID(),
		AccessLog(logger),
		metrics.Handler(),
		Recovery(logger),
		ErrorTranslator(logger),
		TokenExtractor(),
	)

	r.GET("/health", health)
	r.GET("/metrics", metrics.Exposer())

	identify := RequireIdentity(h.auth, services.ErrTokenMissing)

	api := r.Group("/api")
	{
		api.GET("/users", h.listUsers)
		api.POST("/users", h.createUser)
		api.POST("/login", h.login)

		api.GET("/blogs", h.listBlogs)
		api.GET("/blogs/:id", h.getBlog)
		api.POST("/blogs", identify, h.createBlog)
		api.PUT("/blogs/:id", h.updateBlog)
		api.DELETE("/blogs/:id", identify, h.deleteBlog)
	}

	if opts.TestMode {
		tg := api.Group("/testing")
		tg.GET("", h.testingStatus)
		tg.POST("/reset", h.reset)
	}

	r.NoRoute(unknownEndpoint)

	return r
}
