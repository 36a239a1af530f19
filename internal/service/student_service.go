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

type StudentService interface {
	Create(adminID uint, req dto.StudentCreateDTO) (*dto.StudentResponseDTO, error)
	Get(adminID, id uint) (*dto.StudentResponseDTO, error)
	List(adminID uint, page, limit int) (*dto.StudentListDTO, error)
	Update(adminID, id uint, req dto.StudentUpdateDTO) (*dto.StudentResponseDTO, error)
	Delete(adminID, id uint) error
	AttachImages(adminID, id uint, profilePic, certificatePic *string) (*dto.StudentResponseDTO, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	qrCodes     QRCodeService
}

func NewStudentService(studentRepo repository.StudentRepository, qrCodes QRCodeService) StudentService {
	return &studentService{studentRepo: studentRepo, qrCodes: qrCodes}
}

func (s *studentService) Create(adminID uint, req dto.StudentCreateDTO) (*dto.StudentResponseDTO, error) {
	var student model.Student
	if err := copier.Copy(&student, &req); err != nil {
		return nil, err
	}
	student.AdminID = adminID

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		student.PasswordHash = string(hash)
	}

	qr, err := s.qrCodes.ForStudent(&student)
	if err != nil {
		log.Error().Err(err).Str("registrationNo", student.RegistrationNo).Msg("Create student: QR generation failed")
		return nil, err
	}
	student.QRCode = qr

	if err := s.studentRepo.Create(&student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Registration number already in use")
		}
		log.Error().Err(err).Msg("Create student: database error")
		return nil, err
	}
	return studentToDTO(&student)
}

func (s *studentService) Get(adminID, id uint) (*dto.StudentResponseDTO, error) {
	student, err := s.findOwned(adminID, id)
	if err != nil {
		return nil, err
	}
	return studentToDTO(student)
}

func (s *studentService) List(adminID uint, page, limit int) (*dto.StudentListDTO, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	students, total, err := s.studentRepo.FindPageByAdmin(adminID, (page-1)*limit, limit)
	if err != nil {
		log.Error().Err(err).Uint("adminID", adminID).Msg("List students: database error")
		return nil, err
	}

	resp := dto.StudentListDTO{
		Students: make([]dto.StudentResponseDTO, 0, len(students)),
		Total:    total,
		Page:     page,
		Pages:    int((total + int64(limit) - 1) / int64(limit)),
	}
	for i := range students {
		d, err := studentToDTO(&students[i])
		if err != nil {
			return nil, err
		}
		resp.Students = append(resp.Students, *d)
	}
	return &resp, nil
}

func (s *studentService) Update(adminID, id uint, req dto.StudentUpdateDTO) (*dto.StudentResponseDTO, error) {
	student, err := s.findOwned(adminID, id)
	if err != nil {
		return nil, err
	}

	if err := copier.Copy(student, &req); err != nil {
		return nil, err
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		student.PasswordHash = string(hash)
	}

	// Profile fields feed the QR payload, so regenerate it on every update.
	qr, err := s.qrCodes.ForStudent(student)
	if err != nil {
		return nil, err
	}
	student.QRCode = qr

	if err := s.studentRepo.Update(student); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Registration number already in use")
		}
		log.Error().Err(err).Uint("studentID", id).Msg("Update student: database error")
		return nil, err
	}
	return studentToDTO(student)
}

func (s *studentService) Delete(adminID, id uint) error {
	if err := s.studentRepo.Delete(adminID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Student not found")
		}
		log.Error().Err(err).Uint("studentID", id).Msg("Delete student: database error")
		return err
	}
	return nil
}

func (s *studentService) AttachImages(adminID, id uint, profilePic, certificatePic *string) (*dto.StudentResponseDTO, error) {
	student, err := s.findOwned(adminID, id)
	if err != nil {
		return nil, err
	}
	if profilePic != nil {
		student.ProfilePic = profilePic
	}
	if certificatePic != nil {
		student.CertificatePic = certificatePic
	}
	if err := s.studentRepo.Update(student); err != nil {
		log.Error().Err(err).Uint("studentID", id).Msg("AttachImages: database error")
		return nil, err
	}
	return studentToDTO(student)
}

func (s *studentService) findOwned(adminID, id uint) (*model.Student, error) {
	student, err := s.studentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Student not found")
		}
		return nil, err
	}
	// Admins only see the students they created.
	if student.AdminID != adminID {
		return nil, apperr.NotFound("Student not found")
	}
	return student, nil
}

func studentToDTO(student *model.Student) (*dto.StudentResponseDTO, error) {
	var d dto.StudentResponseDTO
	if err := copier.Copy(&d, student); err != nil {
		return nil, err
	}
	return &d, nil
}
