// Package api exposes the scrape pipeline over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	web2llm "github.com/yamasammy/Web2LLM"
	"github.com/yamasammy/Web2LLM/scrape"
)

// Pipeline is the subset of the scrape pipeline the API needs.
type Pipeline interface {
	ProcessURL(ctx context.Context, url string, opts scrape.Options) *web2llm.Result
	ProcessBatch(ctx context.Context, urls []string, opts scrape.Options) *web2llm.BatchResult
}

// Server serves the scrape API.
type Server struct {
	router *gin.Engine
	server *http.Server

	Pipeline Pipeline
	Jobs     web2llm.JobService
	Logger   *slog.Logger

	Addr string
}

// NewServer creates a new Server with routes registered.
func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router: gin.New(),
		Logger: slog.Default(),
	}
	s.router.Use(gin.Recovery())

	s.router.GET("/health", s.handleHealth)
	s.router.POST("/api/scrape", s.handleScrape)
	s.router.POST("/api/scrape/save", s.handleScrapeSave)
	s.router.POST("/api/scrape/multiple", s.handleScrapeMultiple)
	s.router.GET("/api/jobs/:id", s.handleJobStatus)

	return s
}

// ServeHTTP makes the server usable as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open starts listening on s.Addr. It blocks until the listener fails or the
// server is closed.
func (s *Server) Open() error {
	s.server = &http.Server{
		Addr:              s.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.Logger.Info("api listening", "addr", s.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// errorStatus maps application error codes to HTTP status codes.
func errorStatus(err error) int {
	switch web2llm.ErrorCode(err) {
	case web2llm.EINVALID:
		return http.StatusBadRequest
	case web2llm.ENOTFOUND:
		return http.StatusNotFound
	case web2llm.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) error(c *gin.Context, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.Logger.Error("api error", "path", c.Request.URL.Path, "err", err)
	}
	c.JSON(status, gin.H{"error": web2llm.ErrorMessage(err)})
}
