package dto

import "time"

type QuestionCreateDTO struct {
	ExamID        uint     `json:"exam_id" binding:"required"`
	QuestionText  string   `json:"question_text" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2,dive,required"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
}

type QuestionUpdateDTO struct {
	QuestionText  string   `json:"question_text" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2,dive,required"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
}

type QuestionResponseDTO struct {
	ID             uint      `json:"id"`
	ExamID         uint      `json:"exam_id"`
	QuestionText   string    `json:"question_text"`
	Options        []string  `json:"options"`
	CorrectAnswer  string    `json:"correct_answer"`
	PositionInExam int       `json:"position_in_exam"`
	CreatedAt      time.Time `json:"created_at"`
}

// StudentQuestionDTO omits the correct answer.
type StudentQuestionDTO struct {
	ID             uint     `json:"id"`
	ExamID         uint     `json:"exam_id"`
	QuestionText   string   `json:"question_text"`
	Options        []string `json:"options"`
	PositionInExam int      `json:"position_in_exam"`
}

// QuestionImportResultDTO summarises a spreadsheet import.
type QuestionImportResultDTO struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped,omitempty"`
}
