// Package web exposes the dataset over HTTP: JSON endpoints for the
// queries and mutations, and Server-Sent-Events streams bridging the event
// bus to clients.
package web

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/postwire/postwire/mutation"
	"github.com/postwire/postwire/pubsub"
	"github.com/postwire/postwire/query"
)

type Config struct {
	Addr      string
	Debug     bool
	Mutations *mutation.Service
	Queries   *query.Service
	Bus       *pubsub.Bus
	Logger    *zap.Logger
}

type Server struct {
	e         *echo.Echo
	addr      string
	mutations *mutation.Service
	queries   *query.Service
	bus       *pubsub.Bus
	logger    *zap.Logger
}

func New(cfg Config) *Server {
	e := echo.New()
	e.Debug = cfg.Debug
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Logger.SetOutput(os.Stderr)

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := Server{
		e:         e,
		addr:      cfg.Addr,
		mutations: cfg.Mutations,
		queries:   cfg.Queries,
		bus:       cfg.Bus,
		logger:    logger,
	}

	srv.registerRoutes()

	return &srv
}

func (s *Server) registerRoutes() {
	api := s.e.Group("/api/v1")

	api.GET("/users", s.listUsers)
	api.POST("/users", s.createUser)
	api.GET("/users/:id", s.getUser)
	api.PATCH("/users/:id", s.updateUser)
	api.DELETE("/users/:id", s.deleteUser)
	api.GET("/users/:id/posts", s.userPosts)
	api.GET("/users/:id/comments", s.userComments)

	api.GET("/posts", s.listPosts)
	api.POST("/posts", s.createPost)
	api.GET("/posts/:id", s.getPost)
	api.PATCH("/posts/:id", s.updatePost)
	api.DELETE("/posts/:id", s.deletePost)
	api.GET("/posts/:id/author", s.postAuthor)
	api.GET("/posts/:id/comments", s.postComments)

	api.GET("/comments", s.listComments)
	api.POST("/comments", s.createComment)
	api.GET("/comments/:id", s.getComment)
	api.PATCH("/comments/:id", s.updateComment)
	api.DELETE("/comments/:id", s.deleteComment)
	api.GET("/comments/:id/author", s.commentAuthor)
	api.GET("/comments/:id/post", s.commentPost)

	api.GET("/stats", s.stats)

	api.GET("/stream/posts", s.streamPosts)
	api.GET("/stream/posts/:id/comments", s.streamPostComments)
}

// Handler returns the underlying handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Start serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.e.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	if err := s.e.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
