// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"

	"jobportal-backend/internal/auth"
	"jobportal-backend/internal/controller/admin"
	"jobportal-backend/internal/controller/application"
	"jobportal-backend/internal/controller/file"
	jobpostctl "jobportal-backend/internal/controller/jobpost"
	"jobportal-backend/internal/middleware"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Init swagger doc
	_ "jobportal-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// MaxLogoUploadSize caps the body of a job post creation request
const MaxLogoUploadSize = 10 << 20

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	lAuth := auth.NewLocalAuthHandler(s.DB)
	logout := auth.NewLogoutController(s.Blacklist)
	jobController := jobpostctl.NewJobPostController(s.Jobs)
	appController := application.NewApplicationController(s.Jobs)
	adminController := admin.NewAdminController(s.DB)
	fileController := file.NewFileController(repository.NewJobPostRepository(s.DB), s.Files, s.log)

	if len(s.cfg.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     s.cfg.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
			AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}
	r.Use(middleware.SafeHeader(), middleware.RateLimiterMiddleware(s.cfg.RateLimit))

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("login", lAuth.LocalLoginHandler)
			authRoute.POST("register", lAuth.LocalRegisterHandler)
			authRoute.POST("logout", middleware.RequireAuth(s.DB), middleware.JwtBlacklistCheck(s.Blacklist), logout.LogoutHandler)
		}

		// Read endpoints, open to anonymous visitors
		browse := v1.Group("")
		{
			browse.Use(middleware.OptionalAuth(s.DB, s.Blacklist))
			browse.GET("dashboard", jobController.Dashboard)
			browse.GET("global-search", jobController.GlobalSearch)
			browse.GET("jobpost/search", jobController.SearchOnly)
			browse.GET("jobpost/:id", jobController.GetPostByID)
			browse.GET("company/:id/logo", fileController.GetCompanyLogo)
			browse.GET("companies", adminController.GetCompanies)
			browse.GET("locations", adminController.GetLocations)
		}

		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.DB), middleware.JwtBlacklistCheck(s.Blacklist))

			needRecruiter := needAuth.Group("")
			{
				needRecruiter.Use(middleware.CheckRole(model.RoleRecruiter))
				needRecruiter.POST("jobpost", middleware.SizeLimit(MaxLogoUploadSize), jobController.CreateJobPostHandler)
				needRecruiter.PATCH("jobpost/:id", jobController.EditJobPost)
				needRecruiter.DELETE("jobpost/:id", jobController.DeleteJobPost)
				needRecruiter.GET("recruiter/jobs", jobController.RecruiterJobs)
			}

			needSeeker := needAuth.Group("")
			{
				needSeeker.Use(middleware.CheckRole(model.RoleJobSeeker))
				needSeeker.POST("jobpost/:id/apply", appController.ApplicationHandler)
				needSeeker.POST("jobpost/:id/save", appController.SaveJobHandler)
			}

			needAdmin := needAuth.Group("/admin")
			{
				needAdmin.Use(middleware.CheckRole(model.RoleAdmin))
				needAdmin.POST("companies", adminController.CreateCompany)
				needAdmin.PATCH("companies/:company_id", adminController.EditCompany)
				needAdmin.POST("locations", adminController.CreateLocation)
			}
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *Server) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *Server) healthHandler(c *gin.Context) {
	stats := s.DB.Health()
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}
