// Package web exposes a session's task list over HTTP for browser front ends
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/arthur-debert/nanotasks/internal/app"
)

// Server is the HTTP view layer
type Server struct {
	app     *app.App
	router  *gin.Engine
	handler http.Handler
}

// NewServer creates a new web server
func NewServer(a *app.App) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		app:    a,
		router: router,
	}

	router.GET("/health", s.handleHealth)
	router.GET("/", s.handleIndex)

	api := router.Group("/api")
	{
		api.GET("/tasks", s.handleList)
		api.POST("/tasks", s.handleAdd)
		api.POST("/tasks/:index/toggle", s.handleToggle)
		api.DELETE("/tasks/:index", s.handleDelete)
		api.GET("/stats", s.handleStats)
		api.GET("/formats", s.handleFormats)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	s.handler = c.Handler(router)

	return s
}

// Handler returns the root handler with CORS applied
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on addr until ctx is cancelled
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.app.Logger.Info("http view listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
