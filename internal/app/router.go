package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"skriptio_backend/docs"
	"skriptio_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{"message": "Skriptio API"})
		})
		api.GET("/health", c.health.Health)
		api.GET("/healthz", c.health.Healthz)

		api.POST("/generate", c.study.Generate)
		api.GET("/content/:id", c.study.GetContent)
		api.GET("/recent", c.study.Recent)

		api.POST("/ocr/pdf", c.ocr.ExtractPDF)

		api.POST("/status", c.status.Create)
		api.GET("/status", c.status.List)
	}

	// 兼容老探针路径
	router.GET("/healthz", c.health.Healthz)
}
