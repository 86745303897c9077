package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mergington/school-backend/internal/announcement"
	annHttp "github.com/mergington/school-backend/internal/announcement/http"
	"github.com/mergington/school-backend/internal/auth"
	"github.com/mergington/school-backend/internal/teacher"
)

// Config holds the dependencies the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	TeacherService teacher.Service
	AnnService     announcement.Service
	JWTManager     *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// teacherMiddleware: resolves and verifies the caller's teacher identity.
	teacherMiddleware := RequireTeacher(cfg.TeacherService, cfg.JWTManager)

	// Initialize HTTP Handlers (injecting Service dependencies).
	authHandler := NewAuthHandler(cfg.TeacherService, cfg.JWTManager)
	annHandler := annHttp.NewHandler(cfg.AnnService)

	root := r.Group("")
	{
		root.POST("/auth/login", authHandler.Login)
		annHttp.RegisterRoutes(root, annHandler, teacherMiddleware)
	}

	return r
}
