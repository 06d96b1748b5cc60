package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stockfolio/internal/config"
	"stockfolio/internal/handlers"
	"stockfolio/internal/logger"
	"stockfolio/internal/middleware"
	"stockfolio/internal/schema"
	"stockfolio/internal/validator"

	_ "stockfolio/internal/docs" // Import swagger docs
)

// @title           Stockfolio Schema API
// @version         1.0
// @description     Validates stock, transaction and user records against the stockfolio record schemas.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

func main() {
	appConfig, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()

	if err := run(appConfig); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(appConfig *config.Config) error {
	log := logger.Get()

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	router := newRouter(appConfig, schema.Default())

	log.Infof("Starting stockfolio schema server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

func newRouter(appConfig *config.Config, registry handlers.SchemaRegistry) *gin.Engine {
	schemaHandler := handlers.NewSchemaHandler(registry)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", handlers.Health)

	v1 := router.Group("/api/v1")
	schemas := v1.Group("/schemas")
	schemas.Use(middleware.BodyLimit(appConfig.MaxBodyBytes))
	schemas.GET("", schemaHandler.ListSchemas)
	schemas.POST("/validate", schemaHandler.ValidateBatch)
	schemas.POST("/:name/validate", schemaHandler.Validate)

	return router
}
