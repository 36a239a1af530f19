package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hqtran/examportal/internal/controller"
	"github.com/hqtran/examportal/internal/dto"
	"github.com/hqtran/examportal/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	examService       service.ExamService
	assignmentService service.AssignmentService
}

func NewExamController(examService service.ExamService, assignmentService service.AssignmentService) *ExamController {
	return &ExamController{examService: examService, assignmentService: assignmentService}
}

// Create godoc
// @Summary (Admin) Create an exam
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param exam body dto.ExamCreateDTO true "Title and description"
// @Success 201 {object} dto.ExamResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/exams [post]
func (c *ExamController) Create(ctx *gin.Context) {
	var req dto.ExamCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.examService.Create(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary (Admin) List all exams with their questions
// @Tags Admin - Exams
// @Produce json
// @Success 200 {array} dto.ExamResponseDTO
// @Security BearerAuth
// @Router /admin/exams [get]
func (c *ExamController) List(ctx *gin.Context) {
	resp, err := c.examService.ListAll()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary (Admin) Get one exam with its questions
// @Tags Admin - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/exams/{exam_id} [get]
func (c *ExamController) Get(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "exam_id")
	if !ok {
		return
	}
	resp, err := c.examService.Get(id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Search godoc
// @Summary (Admin) Search exams by title
// @Description Case-insensitive substring match on the exam title.
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param query body dto.ExamSearchDTO true "Search term"
// @Success 200 {array} dto.ExamResponseDTO
// @Failure 404 {object} dto.ErrorResponse "No exams found"
// @Security BearerAuth
// @Router /admin/exams/search [post]
func (c *ExamController) Search(ctx *gin.Context) {
	var req dto.ExamSearchDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Exam name is required"})
		return
	}
	resp, err := c.examService.SearchByTitle(req.ExamName)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary (Admin) Update an exam's title and description
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param exam body dto.ExamUpdateDTO true "Title and description"
// @Success 200 {object} dto.ExamResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/exams/{exam_id} [put]
func (c *ExamController) Update(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.ExamUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.examService.Update(id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary (Admin) Delete an exam and its questions
// @Tags Admin - Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/exams/{exam_id} [delete]
func (c *ExamController) Delete(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "exam_id")
	if !ok {
		return
	}
	if err := c.examService.Delete(id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Exam deleted successfully"})
}

// Assign godoc
// @Summary (Admin) Assign an exam to a student
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param assignment body dto.AssignExamDTO true "Student and exam identifiers"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Student or Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam is already assigned to the student"
// @Security BearerAuth
// @Router /admin/exams/assign [post]
func (c *ExamController) Assign(ctx *gin.Context) {
	var req dto.AssignExamDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.assignmentService.AssignExam(req.StudentID, req.ExamID); err != nil {
		log.Warn().Err(err).Uint("studentID", req.StudentID).Uint("examID", req.ExamID).Msg("Assign exam failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Exam assigned to student successfully"})
}
