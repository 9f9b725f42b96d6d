// Package web serves the process dashboard as a JSON HTTP API.
package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"procdash/internal/config"
	"procdash/internal/dashboard"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	addr   string
}

// NewServer wires the dashboard store and the one-shot backend into a
// gin router.
func NewServer(cfg *config.Config, store *dashboard.Store, backend Backend) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(ErrorHandlerMiddleware())

	registerRoutes(router,
		NewDashboardHandler(store, cfg.Folders),
		NewProcessHandler(backend, cfg.Folders, cfg.RequestTimeout),
	)

	addr := cfg.APIAddr()
	return &Server{
		router: router,
		addr:   addr,
		srv: &http.Server{
			Addr:           addr,
			Handler:        router,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
	}
}

func registerRoutes(router *gin.Engine, dash *DashboardHandler, procs *ProcessHandler) {
	api := router.Group("/api")
	{
		board := api.Group("/dashboard")
		board.GET("", dash.GetDashboard)
		board.PUT("/search", dash.SetSearch)
		board.PUT("/folder", dash.SetFolder)
		board.POST("/sort", dash.Sort)
		board.POST("/refresh", dash.Refresh)
		board.POST("/start", dash.RequestStart)
		board.POST("/confirm", dash.Confirm)
		board.POST("/cancel", dash.Cancel)

		api.GET("/folders", dash.ListFolders)
		api.GET("/processes", procs.ListProcesses)
		api.GET("/jobs", procs.ListJobs)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr is the listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("dashboard API listening on http://%s", s.addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
