// Package server is the HTTP preview service: it renders composite requests
// against one base texture and serves pattern and QR previews.
package server

import (
	"image"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/texcomp"
)

// Limits bound what a composite request may upload.
type Limits struct {
	// Bytes caps the request body.
	Bytes int64
	// Pixels caps width×height of each uploaded image, checked before the
	// image is decoded. Zero means no limit.
	Pixels int64
}

// Server renders previews over a fixed base texture.
type Server struct {
	comp   *texcomp.Compositor
	base   image.Image
	limits Limits
	log    *slog.Logger
}

// New creates a Server.
func New(comp *texcomp.Compositor, base image.Image, limits Limits) *Server {
	return &Server{
		comp:   comp,
		base:   base,
		limits: limits,
		log:    texcomp.Logger().With(slog.String("component", "server")),
	}
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())
	s.registerRoutes(r)
	return r
}

func (s *Server) registerRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.POST("/composite", s.composite)
		api.GET("/patterns/:name", s.patternPreview)
		api.GET("/qr", s.qr)
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		s.log.Log(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Int("bytes", c.Writer.Size()),
			slog.Duration("elapsed", time.Since(start)))
	}
}
