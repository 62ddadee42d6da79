package server

import (
	"fmt"
	"net/http"
	"time"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/config"
	"jobportal-backend/internal/database"
	"jobportal-backend/internal/jobpost"
	"jobportal-backend/internal/logging"
	"jobportal-backend/internal/storage"
)

// Server contain config, database instance and the services each route handler needs
type Server struct {
	cfg *config.Config

	DB        *database.DBinstanceStruct
	Jobs      *jobpost.Service
	Blacklist auth.JwtBlacklistStore
	Files     storage.Store

	log *logging.Logger
}

// NewServer construct new Server instance
func NewServer(cfg *config.Config, db *database.DBinstanceStruct, jobs *jobpost.Service, bl auth.JwtBlacklistStore, files storage.Store, log *logging.Logger) *Server {
	if log == nil {
		log = logging.Nop()
	}
	if bl == nil {
		bl = auth.NewInMemoryBlacklistStore()
	}
	return &Server{
		cfg:       cfg,
		DB:        db,
		Jobs:      jobs,
		Blacklist: bl,
		Files:     files,
		log:       log.With("component", "server"),
	}
}

// HTTPServer wraps the routes into an http.Server listening on the configured port
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
