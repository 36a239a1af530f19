package service

import (
	"errors"

	"github.com/hqtran/examportal/internal/apperr"
	"github.com/hqtran/examportal/internal/model"
	"github.com/hqtran/examportal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AssignmentService maintains the exam-to-student authorization relation.
// Assigning is idempotent-rejecting: the second assign of the same pair
// fails with a conflict and leaves exactly one row behind.
type AssignmentService interface {
	AssignExam(studentID, examID uint) error
}

type assignmentService struct {
	studentRepo    repository.StudentRepository
	examRepo       repository.ExamRepository
	assignmentRepo repository.AssignmentRepository
}

func NewAssignmentService(
	studentRepo repository.StudentRepository,
	examRepo repository.ExamRepository,
	assignmentRepo repository.AssignmentRepository,
) AssignmentService {
	return &assignmentService{
		studentRepo:    studentRepo,
		examRepo:       examRepo,
		assignmentRepo: assignmentRepo,
	}
}

func (s *assignmentService) AssignExam(studentID, examID uint) error {
	if _, err := s.studentRepo.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Student or Exam not found")
		}
		return err
	}
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Student or Exam not found")
		}
		return err
	}

	assigned, err := s.assignmentRepo.Exists(studentID, examID)
	if err != nil {
		return err
	}
	if assigned {
		return apperr.Conflict("Exam is already assigned to the student")
	}

	assignment := model.ExamAssignment{StudentID: studentID, ExamID: examID}
	if err := s.assignmentRepo.Create(&assignment); err != nil {
		// Two racing assigns can both pass the pre-check; the unique index
		// decides the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Exam is already assigned to the student")
		}
		log.Error().Err(err).Uint("studentID", studentID).Uint("examID", examID).Msg("AssignExam: database error")
		return err
	}
	return nil
}
