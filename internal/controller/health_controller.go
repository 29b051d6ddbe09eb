package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skriptio_backend/internal/util"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Health godoc
// @Summary 健康检查
// @Description 检查服务及数据库连接状态
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	status := "ok"
	dbStatus := "up"

	sqlDB, err := c.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		status = "degraded"
		dbStatus = "down"
	}

	payload := gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if status != "ok" {
		util.Error(ctx, 503, "service degraded")
		return
	}
	util.Success(ctx, payload)
}

// Healthz 简单存活探针，不依赖下游
func (c *HealthController) Healthz(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"status": "ok"})
}
