package service

import (
	"errors"
	"strings"

	"github.com/hqtran/examportal/internal/apperr"
	"github.com/hqtran/examportal/internal/dto"
	"github.com/hqtran/examportal/internal/model"
	"github.com/hqtran/examportal/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamService owns exam CRUD for admins and the assigned-exam read views
// for students. Student views never carry correct answers.
type ExamService interface {
	Create(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error)
	Get(id uint) (*dto.ExamResponseDTO, error)
	ListAll() ([]dto.ExamResponseDTO, error)
	SearchByTitle(name string) ([]dto.ExamResponseDTO, error)
	Update(id uint, req dto.ExamUpdateDTO) (*dto.ExamResponseDTO, error)
	Delete(id uint) error

	GetAssignedExams(studentID uint) ([]dto.AssignedExamDTO, error)
	GetAssignedExam(studentID, examID uint) (*dto.AssignedExamDTO, error)
}

type examService struct {
	examRepo       repository.ExamRepository
	assignmentRepo repository.AssignmentRepository
}

func NewExamService(examRepo repository.ExamRepository, assignmentRepo repository.AssignmentRepository) ExamService {
	return &examService{examRepo: examRepo, assignmentRepo: assignmentRepo}
}

func (s *examService) Create(req dto.ExamCreateDTO) (*dto.ExamResponseDTO, error) {
	exam := model.Exam{Title: req.Title, Description: req.Description}
	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Msg("Create exam: database error")
		return nil, err
	}
	return examToDTO(&exam)
}

func (s *examService) Get(id uint) (*dto.ExamResponseDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Exam not found")
		}
		return nil, err
	}
	return examToDTO(exam)
}

func (s *examService) ListAll() ([]dto.ExamResponseDTO, error) {
	exams, err := s.examRepo.FindAllWithQuestions()
	if err != nil {
		log.Error().Err(err).Msg("ListAll exams: database error")
		return nil, err
	}
	return examsToDTOs(exams)
}

func (s *examService) SearchByTitle(name string) ([]dto.ExamResponseDTO, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, apperr.InvalidInput("Exam name is required")
	}
	exams, err := s.examRepo.SearchByTitle(name)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("SearchByTitle: database error")
		return nil, err
	}
	if len(exams) == 0 {
		return nil, apperr.NotFound("No exams found")
	}
	return examsToDTOs(exams)
}

func (s *examService) Update(id uint, req dto.ExamUpdateDTO) (*dto.ExamResponseDTO, error) {
	exam, err := s.examRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Exam not found")
		}
		return nil, err
	}
	exam.Title = req.Title
	exam.Description = req.Description
	if err := s.examRepo.Update(exam); err != nil {
		log.Error().Err(err).Uint("examID", id).Msg("Update exam: database error")
		return nil, err
	}
	return examToDTO(exam)
}

func (s *examService) Delete(id uint) error {
	if err := s.examRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Exam not found")
		}
		log.Error().Err(err).Uint("examID", id).Msg("Delete exam: database error")
		return err
	}
	return nil
}

func (s *examService) GetAssignedExams(studentID uint) ([]dto.AssignedExamDTO, error) {
	assignments, err := s.assignmentRepo.FindByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("GetAssignedExams: database error")
		return nil, err
	}

	exams := make([]dto.AssignedExamDTO, 0, len(assignments))
	for i := range assignments {
		// A soft-deleted exam leaves its assignment row behind; skip it
		// instead of surfacing a dangling reference.
		if assignments[i].Exam.ID == 0 {
			continue
		}
		d, err := assignedExamToDTO(&assignments[i].Exam)
		if err != nil {
			return nil, err
		}
		exams = append(exams, *d)
	}
	return exams, nil
}

func (s *examService) GetAssignedExam(studentID, examID uint) (*dto.AssignedExamDTO, error) {
	assigned, err := s.assignmentRepo.Exists(studentID, examID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, apperr.NotFound("Exam not found")
	}
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Exam not found")
		}
		return nil, err
	}
	return assignedExamToDTO(exam)
}

func examToDTO(exam *model.Exam) (*dto.ExamResponseDTO, error) {
	var d dto.ExamResponseDTO
	if err := copier.Copy(&d, exam); err != nil {
		return nil, err
	}
	return &d, nil
}

func examsToDTOs(exams []model.Exam) ([]dto.ExamResponseDTO, error) {
	dtos := make([]dto.ExamResponseDTO, 0, len(exams))
	for i := range exams {
		d, err := examToDTO(&exams[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *d)
	}
	return dtos, nil
}

func assignedExamToDTO(exam *model.Exam) (*dto.AssignedExamDTO, error) {
	var d dto.AssignedExamDTO
	if err := copier.Copy(&d, exam); err != nil {
		return nil, err
	}
	return &d, nil
}
