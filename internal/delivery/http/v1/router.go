package v1

import (
	"net/http"
	"time"

	"edu-finder-backend/config"
	"edu-finder-backend/internal/delivery/http/middleware"
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CatalogUC    domain.CatalogUsecase
	ProfileUC    domain.ProfileUsecase
	SavedUC      domain.SavedUsecase
	AuthUC       domain.AuthUsecase
	HealthUC     usecase.HealthUsecase
	ClientTokens middleware.ClientTokenIssuer
	NewClientID  func() string
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.Origins())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Everything below is scoped to one client's storage
	client := v1.Group("")
	client.Use(middleware.ClientIdentity(deps.ClientTokens, deps.NewClientID, deps.Config.GinMode == gin.ReleaseMode))
	{
		NewCatalogHandler(client, deps.CatalogUC)
		NewProfileHandler(client, deps.ProfileUC)
		NewSavedHandler(client, deps.SavedUC)

		loginLimit := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(
			deps.Config.RateLimitLoginThreshold,
			time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
		))
		NewAuthHandler(client, deps.AuthUC, loginLimit)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	return r
}

func clientID(c *gin.Context) string {
	return c.GetString(string(domain.KeyClientID))
}
