package dto

import "time"

type ExamCreateDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type ExamUpdateDTO = ExamCreateDTO

type ExamSearchDTO struct {
	ExamName string `json:"exam_name" binding:"required"`
}

type AssignExamDTO struct {
	StudentID uint `json:"student_id" binding:"required"`
	ExamID    uint `json:"exam_id" binding:"required"`
}

// ExamResponseDTO is the admin view: questions include the correct answer.
type ExamResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// AssignedExamDTO is the student view: correct answers are stripped before
// the exam leaves the service layer.
type AssignedExamDTO struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Questions   []StudentQuestionDTO `json:"questions,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}
