package controller

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"skriptio_backend/internal/service"
	"skriptio_backend/internal/util"
)

type OCRController struct {
	OCRService *service.OCRService
}

func NewOCRController(ocrService *service.OCRService) *OCRController {
	return &OCRController{OCRService: ocrService}
}

// ExtractPDF godoc
// @Summary 扫描版PDF文字识别
// @Description 将PDF页面栅格化后走tesseract识别，适用于无文本层的扫描件
// @Tags ocr
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF文件"
// @Param max_pages formData int false "最多识别页数，默认8"
// @Param scale formData number false "渲染倍率，1.2~2.5，默认1.6"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /ocr/pdf [post]
func (c *OCRController) ExtractPDF(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "PDF file is required")
		return
	}
	src, err := file.Open()
	if err != nil {
		util.BadRequest(ctx, "Failed to read uploaded file")
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		util.BadRequest(ctx, "Failed to read uploaded file")
		return
	}

	maxPages, _ := strconv.Atoi(ctx.PostForm("max_pages"))
	scale, _ := strconv.ParseFloat(ctx.PostForm("scale"), 64)

	text, err := c.OCRService.Recognize(ctx.Request.Context(), data, maxPages, scale)
	switch {
	case err == nil:
	case errors.Is(err, util.ErrOCRUnavailable):
		util.Error(ctx, 503, "OCR engine is not available on this server")
		return
	case errors.Is(err, util.ErrUnsupportedFile):
		util.BadRequest(ctx, "Only PDF files are supported")
		return
	case errors.Is(err, util.ErrExtraction):
		util.BadRequest(ctx, "Failed to read PDF: "+err.Error())
		return
	default:
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"text": text})
}
