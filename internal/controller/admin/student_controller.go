package admin

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hqtran/examportal/config"
	"github.com/hqtran/examportal/internal/controller"
	"github.com/hqtran/examportal/internal/dto"
	"github.com/hqtran/examportal/internal/middleware"
	"github.com/hqtran/examportal/internal/service"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	studentService service.StudentService
	uploadDir      string
}

func NewStudentController(studentService service.StudentService, cfg *config.Config) *StudentController {
	return &StudentController{studentService: studentService, uploadDir: cfg.Upload.Dir}
}

// Create godoc
// @Summary (Admin) Create a student record
// @Description Creates the student, hashes the optional login password and generates the identity QR code.
// @Tags Admin - Students
// @Accept json
// @Produce json
// @Param student body dto.StudentCreateDTO true "Student profile"
// @Success 201 {object} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Registration number already in use"
// @Security BearerAuth
// @Router /admin/students [post]
func (c *StudentController) Create(ctx *gin.Context) {
	var req dto.StudentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.studentService.Create(middleware.AdminID(ctx), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary (Admin) List students created by the caller
// @Tags Admin - Students
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {object} dto.StudentListDTO
// @Security BearerAuth
// @Router /admin/students [get]
func (c *StudentController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	resp, err := c.studentService.List(middleware.AdminID(ctx), page, limit)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary (Admin) Get one student
// @Tags Admin - Students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/students/{student_id} [get]
func (c *StudentController) Get(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "student_id")
	if !ok {
		return
	}
	resp, err := c.studentService.Get(middleware.AdminID(ctx), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary (Admin) Update a student record
// @Description Replaces the profile fields and regenerates the QR code.
// @Tags Admin - Students
// @Accept json
// @Produce json
// @Param student_id path int true "Student ID"
// @Param student body dto.StudentUpdateDTO true "Student profile"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/students/{student_id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "student_id")
	if !ok {
		return
	}
	var req dto.StudentUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.studentService.Update(middleware.AdminID(ctx), id, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary (Admin) Delete a student record
// @Tags Admin - Students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/students/{student_id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "student_id")
	if !ok {
		return
	}
	if err := c.studentService.Delete(middleware.AdminID(ctx), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted"})
}

// UploadImages godoc
// @Summary (Admin) Upload profile and certificate pictures for a student
// @Tags Admin - Students
// @Accept mpfd
// @Produce json
// @Param student_id path int true "Student ID"
// @Param profile_pic formData file false "Profile picture"
// @Param certificate_pic formData file false "Certificate picture"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/students/{student_id}/images [post]
func (c *StudentController) UploadImages(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "student_id")
	if !ok {
		return
	}

	profilePic, err := c.saveUpload(ctx, "profile_pic")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to store profile picture"})
		return
	}
	certificatePic, err := c.saveUpload(ctx, "certificate_pic")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to store certificate picture"})
		return
	}
	if profilePic == nil && certificatePic == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "No image files provided"})
		return
	}

	resp, err := c.studentService.AttachImages(middleware.AdminID(ctx), id, profilePic, certificatePic)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ImageToBase64 godoc
// @Summary (Admin) Convert an uploaded image to a base64 data URL
// @Tags Admin - Students
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/images/base64 [post]
func (c *StudentController) ImageToBase64(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Image file is required"})
		return
	}
	src, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read image file"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read image file"})
		return
	}

	mime := file.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}
	ctx.JSON(http.StatusOK, gin.H{"data_url": "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)})
}

func (c *StudentController) saveUpload(ctx *gin.Context, field string) (*string, error) {
	file, err := ctx.FormFile(field)
	if err != nil {
		// Field absent is fine; both images are optional.
		return nil, nil
	}
	if err := os.MkdirAll(c.uploadDir, 0o755); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s_%d%s", field, time.Now().UnixNano(), filepath.Ext(file.Filename))
	dst := filepath.Join(c.uploadDir, name)
	if err := ctx.SaveUploadedFile(file, dst); err != nil {
		log.Error().Err(err).Str("field", field).Msg("UploadImages: failed to save file")
		return nil, err
	}
	return &dst, nil
}
