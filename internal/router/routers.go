package router

import (
	"github.com/campushub/teacher-service/config"
	"github.com/campushub/teacher-service/internal/handler"
	"github.com/campushub/teacher-service/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler    *handler.AuthHandler
	teacherHandler *handler.TeacherHandler
	healthHandler  *handler.HealthHandler

	jwtMw  *middleware.JWTMiddleware
	Config *config.Config
}

func NewRouter(
	auth *handler.AuthHandler,
	teacher *handler.TeacherHandler,
	health *handler.HealthHandler,
	jwtMw *middleware.JWTMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:    auth,
		teacherHandler: teacher,
		healthHandler:  health,
		jwtMw:          jwtMw,
		Config:         cfg,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.ContextMiddleware())
	router.Use(middleware.CORS(r.Config))

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.HealthCheck)

		r.authRoutes(api)
		r.teacherRoutes(api)
	}

	return router
}
