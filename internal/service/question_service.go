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

type QuestionService interface {
	Create(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	Update(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error)
	Delete(id uint) error
	ListByExam(examID uint) ([]dto.QuestionResponseDTO, error)
}

type questionService struct {
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
}

func NewQuestionService(examRepo repository.ExamRepository, questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{examRepo: examRepo, questionRepo: questionRepo}
}

// validateOptions enforces the multiple-choice shape: at least two distinct
// options, and the correct answer must be one of them.
func validateOptions(options []string, correctAnswer string) error {
	if len(options) < 2 {
		return apperr.InvalidInput("At least two options are required")
	}
	seen := make(map[string]bool, len(options))
	for _, opt := range options {
		if opt == "" {
			return apperr.InvalidInput("Options must not be empty")
		}
		if seen[opt] {
			return apperr.InvalidInput("Options must be distinct")
		}
		seen[opt] = true
	}
	if !seen[correctAnswer] {
		return apperr.InvalidInput("Correct answer must be one of the options")
	}
	return nil
}

func (s *questionService) Create(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if err := validateOptions(req.Options, req.CorrectAnswer); err != nil {
		return nil, err
	}

	if _, err := s.examRepo.FindByID(req.ExamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Exam not found")
		}
		return nil, err
	}

	exists, err := s.questionRepo.ExistsByExamAndText(req.ExamID, req.QuestionText)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Question already exists for this exam")
	}

	question := model.Question{
		ExamID:        req.ExamID,
		QuestionText:  req.QuestionText,
		Options:       model.Options(req.Options),
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.questionRepo.CreateAtEnd(&question); err != nil {
		// The unique index backs up the pre-check under concurrency.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Question already exists for this exam")
		}
		log.Error().Err(err).Uint("examID", req.ExamID).Msg("Create question: database error")
		return nil, err
	}
	return questionToDTO(&question)
}

func (s *questionService) Update(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error) {
	if err := validateOptions(req.Options, req.CorrectAnswer); err != nil {
		return nil, err
	}
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Question not found")
		}
		return nil, err
	}

	question.QuestionText = req.QuestionText
	question.Options = model.Options(req.Options)
	question.CorrectAnswer = req.CorrectAnswer
	if err := s.questionRepo.Update(question); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Question already exists for this exam")
		}
		log.Error().Err(err).Uint("questionID", id).Msg("Update question: database error")
		return nil, err
	}
	return questionToDTO(question)
}

func (s *questionService) Delete(id uint) error {
	if err := s.questionRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Question not found")
		}
		log.Error().Err(err).Uint("questionID", id).Msg("Delete question: database error")
		return err
	}
	return nil
}

func (s *questionService) ListByExam(examID uint) ([]dto.QuestionResponseDTO, error) {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Exam not found")
		}
		return nil, err
	}
	questions, err := s.questionRepo.FindByExamID(examID)
	if err != nil {
		return nil, err
	}
	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		d, err := questionToDTO(&questions[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *d)
	}
	return dtos, nil
}

func questionToDTO(question *model.Question) (*dto.QuestionResponseDTO, error) {
	var d dto.QuestionResponseDTO
	if err := copier.Copy(&d, question); err != nil {
		return nil, err
	}
	return &d, nil
}
