package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hqtran/examportal/internal/dto"
	"github.com/hqtran/examportal/internal/repository"
	"github.com/hqtran/examportal/internal/service"
)

const (
	ContextAdminID   = "admin_id"
	ContextStudentID = "student_id"
)

// AuthMiddleware resolves bearer credentials to an actor before any core
// operation runs. The actor must still exist in storage; a token for a
// deleted account is rejected.
type AuthMiddleware struct {
	tokens      service.TokenService
	adminRepo   repository.AdminRepository
	studentRepo repository.StudentRepository
}

func NewAuthMiddleware(tokens service.TokenService, adminRepo repository.AdminRepository, studentRepo repository.StudentRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, adminRepo: adminRepo, studentRepo: studentRepo}
}

func bearerToken(ctx *gin.Context) (string, bool) {
	header := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx)
		if !ok {
			abortUnauthorized(ctx)
			return
		}
		claims, err := m.tokens.Parse(token)
		if err != nil || claims.Role != service.RoleAdmin {
			abortUnauthorized(ctx)
			return
		}
		if _, err := m.adminRepo.FindByID(claims.Subject); err != nil {
			abortUnauthorized(ctx)
			return
		}
		ctx.Set(ContextAdminID, claims.Subject)
		ctx.Next()
	}
}

func (m *AuthMiddleware) RequireStudent() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx)
		if !ok {
			abortUnauthorized(ctx)
			return
		}
		claims, err := m.tokens.Parse(token)
		if err != nil || claims.Role != service.RoleStudent {
			abortUnauthorized(ctx)
			return
		}
		if _, err := m.studentRepo.FindByID(claims.Subject); err != nil {
			abortUnauthorized(ctx)
			return
		}
		ctx.Set(ContextStudentID, claims.Subject)
		ctx.Next()
	}
}

func abortUnauthorized(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Please authenticate"})
}

// AdminID returns the authenticated admin from the request context.
func AdminID(ctx *gin.Context) uint {
	return ctx.GetUint(ContextAdminID)
}

// StudentID returns the authenticated student from the request context.
func StudentID(ctx *gin.Context) uint {
	return ctx.GetUint(ContextStudentID)
}
