package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hqtran/examportal/internal/controller"
	"github.com/hqtran/examportal/internal/dto"
	"github.com/hqtran/examportal/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
	importService   service.QuestionImportService
}

func NewQuestionController(questionService service.QuestionService, importService service.QuestionImportService) *QuestionController {
	return &QuestionController{questionService: questionService, importService: importService}
}

// Create godoc
// @Summary (Admin) Add a question to an exam
// @Description Appends the question to the exam's ordered sequence. The correct answer must be one of the options.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Question already exists for this exam"
// @Security BearerAuth
// @Router /admin/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.questionService.Create(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary (Admin) Update a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "Question data"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/questions/{question_id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.questionService.Update(id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/questions/{question_id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.questionService.Delete(id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted"})
}

// ListByExam godoc
// @Summary (Admin) List an exam's questions in order
// @Tags Admin - Questions
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Security BearerAuth
// @Router /admin/exams/{exam_id}/questions [get]
func (c *QuestionController) ListByExam(ctx *gin.Context) {
	examID, ok := controller.UintParam(ctx, "exam_id")
	if !ok {
		return
	}
	resp, err := c.questionService.ListByExam(examID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Import godoc
// @Summary (Admin) Bulk-import questions from an xlsx workbook
// @Description One question per row: question text, two or more options, then the correct answer in the last column.
// @Tags Admin - Questions
// @Accept mpfd
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} dto.QuestionImportResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Security BearerAuth
// @Router /admin/exams/{exam_id}/questions/import [post]
func (c *QuestionController) Import(ctx *gin.Context) {
	examID, ok := controller.UintParam(ctx, "exam_id")
	if !ok {
		return
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Workbook file is required"})
		return
	}
	src, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read workbook file"})
		return
	}
	defer src.Close()

	resp, err := c.importService.ImportXLSX(examID, src)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
