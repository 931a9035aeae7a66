package v1

import (
	"ai-marketing-backend/config"
	"ai-marketing-backend/internal/delivery/http/middleware"
	"ai-marketing-backend/internal/domain"
	"ai-marketing-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	isProduction := deps.Config.IsProduction()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.Origins(), isProduction)) // CORS must be first!
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware(isProduction))
	r.Use(middleware.BodyLimit(deps.Config.MaxBodyBytes))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	NewHealthHandler(api, deps.HealthUC)
	NewContactHandler(api, deps.ContactUC)

	if !isProduction {
		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
