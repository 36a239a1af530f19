package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hqtran/examportal/internal/controller"
	"github.com/hqtran/examportal/internal/dto"
	"github.com/hqtran/examportal/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary (Admin) Register an administrator account
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param credentials body dto.AdminRegisterDTO true "Email and password"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /admin/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.AdminRegisterDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.authService.RegisterAdmin(req); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("Admin Register failed")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "User registered"})
}

// Login godoc
// @Summary (Admin) Log in and receive a bearer token
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param credentials body dto.AdminLoginDTO true "Email and password"
// @Success 200 {object} dto.AdminLoginResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /admin/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.AdminLoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.authService.LoginAdmin(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
