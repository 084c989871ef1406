package server

import (
	"strings"
	"time"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/handler"
	"github.com/devfolio/devfolio/internal/middleware"
	"github.com/devfolio/devfolio/internal/repository"
	"github.com/devfolio/devfolio/internal/service"
	"github.com/devfolio/devfolio/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
}

func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, presigner storage.Presigner) *Server {
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	siteConfigRepo := repository.NewSiteConfigRepository(db)

	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, siteConfigRepo)
	projectService := service.NewProjectService(projectRepo)
	siteConfigService := service.NewSiteConfigService(siteConfigRepo)
	uploadService := service.NewUploadService(presigner, cfg.PresignExpiry)
	presignLimiter := service.NewRateLimiter(redisClient, "presign", cfg.PresignRateLimit)

	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	siteConfigHandler := handler.NewSiteConfigHandler(siteConfigService)
	uploadHandler := handler.NewUploadHandler(uploadService, presignLimiter)
	pageHandler := handler.NewPageHandler(userService, projectService, siteConfigService, authService)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.LoadTemplates(router)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/session", authHandler.Session)

		api.GET("/users", userHandler.GetAllUsers)
		api.GET("/users/:userId/projects", projectHandler.GetProjects)
		api.GET("/users/:userId/config", siteConfigHandler.GetSiteConfig)
		api.PUT("/users/:userId/config", siteConfigHandler.SaveSiteConfig)

		api.POST("/projects", projectHandler.CreateProject)
		api.PUT("/projects/order", projectHandler.ReorderProjects)
		api.GET("/projects/:id", projectHandler.GetProjectByID)
		api.PUT("/projects/:id", projectHandler.UpdateProject)
		api.DELETE("/projects/:id", projectHandler.DeleteProject)

		api.POST("/r2/presign", uploadHandler.Presign)
	}

	// Public pages resolve "whose site is this" from the URL; the admin
	// page takes its user from the session instead, so it skips the
	// site-config middleware.
	siteCtx := middleware.SiteConfigContext(siteConfigService)

	router.GET("/", siteCtx, pageHandler.Landing)
	router.GET("/admin", pageHandler.Admin)
	router.GET("/:userId", siteCtx, pageHandler.Home)
	router.GET("/:userId/projects", siteCtx, pageHandler.Projects)
	router.GET("/:userId/projects/:id", siteCtx, pageHandler.ProjectDetail)

	return &Server{engine: router}
}

func (s *Server) Run(port string) error {
	return s.engine.Run(":" + port)
}
