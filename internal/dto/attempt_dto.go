package dto

import "time"

// SubmittedAnswerDTO is one answer within an attempt submission. The client
// must echo back the question ID in exam order; the attempt engine rejects
// any positional mismatch. A blank answer is accepted and scored incorrect.
type SubmittedAnswerDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer"`
}

type AttemptSubmitDTO struct {
	Answers []SubmittedAnswerDTO `json:"answers" binding:"required,dive"`
}

type AttemptResultDTO struct {
	AttendedQuestions int `json:"attended_questions"`
	CorrectAnswers    int `json:"correct_answers"`
	TotalQuestions    int `json:"total_questions"`
}

type RecordedAnswerDTO struct {
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
	Position   int    `json:"position"`
}

// AnswerRecordDTO is the read view of a past attempt.
type AnswerRecordDTO struct {
	ID             uint                `json:"id"`
	StudentID      uint                `json:"student_id"`
	ExamID         uint                `json:"exam_id"`
	ExamTitle      string              `json:"exam_title,omitempty"`
	Answers        []RecordedAnswerDTO `json:"answers,omitempty"`
	CorrectAnswers int                 `json:"correct_answers"`
	TotalQuestions int                 `json:"total_questions"`
	CreatedAt      time.Time           `json:"created_at"`
}
