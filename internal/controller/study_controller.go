package controller

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"skriptio_backend/internal/generator"
	"skriptio_backend/internal/service"
	"skriptio_backend/internal/util"
)

type StudyController struct {
	StudyService *service.StudyService
}

func NewStudyController(studyService *service.StudyService) *StudyController {
	return &StudyController{StudyService: studyService}
}

// Generate godoc
// @Summary 生成学习资料
// @Description 上传PDF或直接粘贴文本，生成测验、记忆卡片和7天学习计划
// @Tags study
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "PDF文件"
// @Param text formData string false "原始文本"
// @Param title formData string false "标题，缺省取第一句"
// @Success 201 {object} util.Response{data=model.StudyContent}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /generate [post]
func (c *StudyController) Generate(ctx *gin.Context) {
	title := ctx.PostForm("title")
	text := ctx.PostForm("text")

	var fileName string
	var fileData []byte
	if file, err := ctx.FormFile("file"); err == nil {
		fileName = file.Filename
		src, err := file.Open()
		if err != nil {
			util.BadRequest(ctx, "Failed to read uploaded file")
			return
		}
		defer src.Close()
		if fileData, err = io.ReadAll(src); err != nil {
			util.BadRequest(ctx, "Failed to read uploaded file")
			return
		}
	}

	if len(fileData) == 0 && text == "" {
		util.BadRequest(ctx, "Provide a PDF file or text content")
		return
	}

	kit, err := c.StudyService.Generate(ctx.Request.Context(), service.GenerateInput{
		FileName: fileName,
		FileData: fileData,
		Text:     text,
		Title:    title,
	})
	switch {
	case err == nil:
	case errors.Is(err, util.ErrUnsupportedFile):
		util.BadRequest(ctx, "Only PDF files are supported")
		return
	case errors.Is(err, generator.ErrEmptyContent):
		util.BadRequest(ctx, "Empty content")
		return
	case errors.Is(err, util.ErrExtraction):
		util.BadRequest(ctx, "Failed to read PDF: "+err.Error())
		return
	default:
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, kit)
}

// GetContent godoc
// @Summary 按id获取已生成的学习资料
// @Tags study
// @Produce json
// @Param id path string true "内容id"
// @Success 200 {object} util.Response{data=model.StudyContent}
// @Failure 404 {object} util.Response
// @Router /content/{id} [get]
func (c *StudyController) GetContent(ctx *gin.Context) {
	kit, err := c.StudyService.GetContent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrContentNotFound) {
			util.NotFound(ctx, "Content not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, kit)
}

// Recent godoc
// @Summary 最近生成的内容列表
// @Description 返回最新5条 {id,title,created_at}，新的在前
// @Tags study
// @Produce json
// @Success 200 {object} util.Response{data=[]model.StudyContentSummary}
// @Router /recent [get]
func (c *StudyController) Recent(ctx *gin.Context) {
	items, err := c.StudyService.Recent(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}
