package model

import (
	"time"

	"gorm.io/gorm"
)

// AnswerRecord is the immutable outcome of one student's single attempt at
// one exam. The unique index on (student_id, exam_id) is the serializing
// point for the single-attempt rule: two racing submissions cannot both
// insert a record.
type AnswerRecord struct {
	ID             uint            `gorm:"primarykey" json:"id"`
	StudentID      uint            `json:"student_id" gorm:"not null;uniqueIndex:idx_answer_records_student_exam"`
	ExamID         uint            `json:"exam_id" gorm:"not null;uniqueIndex:idx_answer_records_student_exam"`
	Exam           Exam            `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
	Answers        []RecordedAnswer `json:"answers,omitempty" gorm:"foreignKey:AnswerRecordID;constraint:OnDelete:CASCADE"`
	CorrectAnswers int             `json:"correct_answers" gorm:"not null"`
	TotalQuestions int             `json:"total_questions" gorm:"not null"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

// RecordedAnswer is one (question, submitted answer) pair inside an
// AnswerRecord, kept in submission order via Position.
type RecordedAnswer struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	AnswerRecordID uint   `json:"answer_record_id" gorm:"not null;index"`
	QuestionID     uint   `json:"question_id" gorm:"not null"`
	Answer         string `json:"answer" gorm:"type:text;not null"`
	Position       int    `json:"position" gorm:"not null"`
}
