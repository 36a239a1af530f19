package service

import (
	"errors"

	"github.com/hqtran/examportal/internal/apperr"
	"github.com/hqtran/examportal/internal/dto"
	"github.com/hqtran/examportal/internal/model"
	"github.com/hqtran/examportal/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService covers credential issuance for both actor kinds. Admins log
// in with email+password, students with registration number+password.
type AuthService interface {
	RegisterAdmin(req dto.AdminRegisterDTO) error
	LoginAdmin(req dto.AdminLoginDTO) (*dto.AdminLoginResponseDTO, error)
	LoginStudent(req dto.StudentLoginDTO) (*dto.StudentLoginResponseDTO, error)
}

type authService struct {
	adminRepo   repository.AdminRepository
	studentRepo repository.StudentRepository
	tokens      TokenService
}

func NewAuthService(adminRepo repository.AdminRepository, studentRepo repository.StudentRepository, tokens TokenService) AuthService {
	return &authService{adminRepo: adminRepo, studentRepo: studentRepo, tokens: tokens}
}

func (s *authService) RegisterAdmin(req dto.AdminRegisterDTO) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := model.Admin{Email: req.Email, PasswordHash: string(hash)}
	if err := s.adminRepo.Create(&admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Email already registered")
		}
		log.Error().Err(err).Msg("RegisterAdmin: failed to create admin")
		return err
	}
	return nil
}

func (s *authService) LoginAdmin(req dto.AdminLoginDTO) (*dto.AdminLoginResponseDTO, error) {
	admin, err := s.adminRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	token, err := s.tokens.Issue(admin.ID, RoleAdmin)
	if err != nil {
		log.Error().Err(err).Uint("adminID", admin.ID).Msg("LoginAdmin: failed to issue token")
		return nil, err
	}
	return &dto.AdminLoginResponseDTO{ID: admin.ID, Email: admin.Email, Token: token}, nil
}

func (s *authService) LoginStudent(req dto.StudentLoginDTO) (*dto.StudentLoginResponseDTO, error) {
	student, err := s.studentRepo.FindByRegistrationNo(req.RegistrationNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Student not found")
		}
		return nil, err
	}
	if student.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	token, err := s.tokens.Issue(student.ID, RoleStudent)
	if err != nil {
		log.Error().Err(err).Uint("studentID", student.ID).Msg("LoginStudent: failed to issue token")
		return nil, err
	}

	resp := dto.StudentLoginResponseDTO{Token: token}
	if err := copier.Copy(&resp.Student, student); err != nil {
		return nil, err
	}
	return &resp, nil
}
