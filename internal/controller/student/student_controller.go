package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hqtran/examportal/internal/controller"
	"github.com/hqtran/examportal/internal/dto"
	"github.com/hqtran/examportal/internal/middleware"
	"github.com/hqtran/examportal/internal/service"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	authService    service.AuthService
	examService    service.ExamService
	attemptService service.AttemptService
}

func NewStudentController(
	authService service.AuthService,
	examService service.ExamService,
	attemptService service.AttemptService,
) *StudentController {
	return &StudentController{
		authService:    authService,
		examService:    examService,
		attemptService: attemptService,
	}
}

// Login godoc
// @Summary (Student) Log in with registration number and password
// @Tags Student
// @Accept json
// @Produce json
// @Param credentials body dto.StudentLoginDTO true "Registration number and password"
// @Success 200 {object} dto.StudentLoginResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /student/auth/login [post]
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.StudentLoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Registration number and password are required"})
		return
	}
	resp, err := c.authService.LoginStudent(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAssignedExams godoc
// @Summary (Student) List exams assigned to the caller
// @Description Exams come back in assignment order with their questions in exam order; correct answers are omitted.
// @Tags Student
// @Produce json
// @Success 200 {array} dto.AssignedExamDTO
// @Security BearerAuth
// @Router /student/exams [get]
func (c *StudentController) GetAssignedExams(ctx *gin.Context) {
	resp, err := c.examService.GetAssignedExams(middleware.StudentID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAssignedExam godoc
// @Summary (Student) Get one assigned exam
// @Tags Student
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.AssignedExamDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Security BearerAuth
// @Router /student/exams/{exam_id} [get]
func (c *StudentController) GetAssignedExam(ctx *gin.Context) {
	examID, ok := controller.UintParam(ctx, "exam_id")
	if !ok {
		return
	}
	resp, err := c.examService.GetAssignedExam(middleware.StudentID(ctx), examID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAttempt godoc
// @Summary (Student) Submit answers for an assigned exam
// @Description One attempt per exam. Answers must match the exam's question count and order.
// @Tags Student
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param submission body dto.AttemptSubmitDTO true "Ordered answers"
// @Success 200 {object} dto.AttemptResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid answers format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "You have already attempted this exam"
// @Security BearerAuth
// @Router /student/exams/{exam_id}/attempts [post]
func (c *StudentController) SubmitAttempt(ctx *gin.Context) {
	examID, ok := controller.UintParam(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid answers format"})
		return
	}
	resp, err := c.attemptService.SubmitAttempt(middleware.StudentID(ctx), examID, req)
	if err != nil {
		log.Warn().Err(err).Uint("examID", examID).Msg("SubmitAttempt rejected")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetResults godoc
// @Summary (Student) List the caller's past attempt results
// @Tags Student
// @Produce json
// @Success 200 {array} dto.AnswerRecordDTO
// @Security BearerAuth
// @Router /student/results [get]
func (c *StudentController) GetResults(ctx *gin.Context) {
	resp, err := c.attemptService.GetResults(middleware.StudentID(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
