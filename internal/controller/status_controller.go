package controller

import (
	"github.com/gin-gonic/gin"

	"skriptio_backend/internal/service"
	"skriptio_backend/internal/util"
)

type StatusController struct {
	StatusService *service.StatusService
}

func NewStatusController(statusService *service.StatusService) *StatusController {
	return &StatusController{StatusService: statusService}
}

type createStatusRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

// Create godoc
// @Summary 记录一次客户端上报
// @Tags status
// @Accept json
// @Produce json
// @Param body body createStatusRequest true "客户端名称"
// @Success 201 {object} util.Response{data=model.StatusCheck}
// @Failure 400 {object} util.Response
// @Router /status [post]
func (c *StatusController) Create(ctx *gin.Context) {
	var req createStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "client_name is required")
		return
	}
	check, err := c.StatusService.Record(ctx.Request.Context(), req.ClientName)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, check)
}

// List godoc
// @Summary 客户端上报列表
// @Tags status
// @Produce json
// @Success 200 {object} util.Response{data=[]model.StatusCheck}
// @Router /status [get]
func (c *StatusController) List(ctx *gin.Context) {
	checks, err := c.StatusService.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, checks)
}
