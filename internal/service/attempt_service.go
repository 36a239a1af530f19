package service

import (
	"errors"

	"github.com/hqtran/examportal/internal/apperr"
	"github.com/hqtran/examportal/internal/dto"
	"github.com/hqtran/examportal/internal/model"
	"github.com/hqtran/examportal/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService is the attempt engine. A submission either passes every
// guard and is recorded in full, or it is rejected with no persisted side
// effect; there is no in-progress state.
type AttemptService interface {
	SubmitAttempt(studentID, examID uint, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error)
	GetResults(studentID uint) ([]dto.AnswerRecordDTO, error)
}

type attemptService struct {
	studentRepo    repository.StudentRepository
	examRepo       repository.ExamRepository
	assignmentRepo repository.AssignmentRepository
	recordRepo     repository.AnswerRecordRepository
	db             *gorm.DB
}

func NewAttemptService(
	studentRepo repository.StudentRepository,
	examRepo repository.ExamRepository,
	assignmentRepo repository.AssignmentRepository,
	recordRepo repository.AnswerRecordRepository,
	db *gorm.DB,
) AttemptService {
	return &attemptService{
		studentRepo:    studentRepo,
		examRepo:       examRepo,
		assignmentRepo: assignmentRepo,
		recordRepo:     recordRepo,
		db:             db,
	}
}

// SubmitAttempt validates the submission against the exam's ordered
// question sequence, scores it, and records the attempt.
//
// The answer record insert and the student attempted-state update run in
// one transaction, and the unique index on answer_records(student_id,
// exam_id) serializes concurrent submissions: whichever insert commits
// second fails the index and reports a conflict, so a (student, exam) pair
// transitions to attempted at most once.
func (s *attemptService) SubmitAttempt(studentID, examID uint, req dto.AttemptSubmitDTO) (*dto.AttemptResultDTO, error) {
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Student not found")
		}
		return nil, err
	}

	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Exam not found")
		}
		return nil, err
	}

	if len(req.Answers) != len(exam.Questions) {
		return nil, apperr.InvalidInput("Invalid answers format")
	}

	// Attempts are only allowed for assigned exams.
	assigned, err := s.assignmentRepo.Exists(studentID, examID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, apperr.Conflict("Exam is not assigned to this student")
	}

	attempted, err := s.recordRepo.Exists(studentID, examID)
	if err != nil {
		return nil, err
	}
	if attempted {
		return nil, apperr.Conflict("You have already attempted this exam")
	}

	// The client must echo the question IDs back in exam order. Scoring by
	// position without this check would let a shuffled submission silently
	// produce a wrong score.
	correct := 0
	recorded := make([]model.RecordedAnswer, len(exam.Questions))
	for i, question := range exam.Questions {
		submitted := req.Answers[i]
		if submitted.QuestionID != question.ID {
			return nil, apperr.InvalidInput("Invalid answer format")
		}
		if submitted.Answer == question.CorrectAnswer {
			correct++
		}
		recorded[i] = model.RecordedAnswer{
			QuestionID: question.ID,
			Answer:     submitted.Answer,
			Position:   i,
		}
	}

	record := model.AnswerRecord{
		StudentID:      studentID,
		ExamID:         examID,
		Answers:        recorded,
		CorrectAnswers: correct,
		TotalQuestions: len(exam.Questions),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return tx.Model(&model.Student{}).
			Where("id = ?", student.ID).
			UpdateColumn("attended_exams", gorm.Expr("attended_exams + 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("You have already attempted this exam")
		}
		log.Error().Err(err).Uint("studentID", studentID).Uint("examID", examID).Msg("SubmitAttempt: failed to persist attempt")
		return nil, err
	}

	log.Info().
		Uint("studentID", studentID).
		Uint("examID", examID).
		Int("correct", correct).
		Int("total", len(exam.Questions)).
		Msg("Exam attempt recorded")

	return &dto.AttemptResultDTO{
		AttendedQuestions: len(exam.Questions),
		CorrectAnswers:    correct,
		TotalQuestions:    len(exam.Questions),
	}, nil
}

func (s *attemptService) GetResults(studentID uint) ([]dto.AnswerRecordDTO, error) {
	records, err := s.recordRepo.FindAllByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("GetResults: database error")
		return nil, err
	}

	dtos := make([]dto.AnswerRecordDTO, 0, len(records))
	for i := range records {
		var d dto.AnswerRecordDTO
		if err := copier.Copy(&d, &records[i]); err != nil {
			return nil, err
		}
		if records[i].Exam.ID != 0 {
			d.ExamTitle = records[i].Exam.Title
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}
