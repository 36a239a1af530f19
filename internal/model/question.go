package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Options is stored as a JSON array column so the same model works on
// postgres and the sqlite test database.
type Options []string

func (o Options) Value() (driver.Value, error) {
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (o *Options) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	case nil:
		*o = nil
		return nil
	default:
		return fmt.Errorf("unsupported options column type %T", src)
	}
}

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	ExamID        uint           `json:"exam_id" gorm:"not null;index;uniqueIndex:idx_questions_exam_text,where:deleted_at IS NULL"`
	QuestionText  string         `json:"question_text" gorm:"type:text;not null;uniqueIndex:idx_questions_exam_text"`
	Options       Options        `json:"options" gorm:"type:text;not null"`
	CorrectAnswer string         `json:"correct_answer,omitempty" gorm:"not null"`
	// PositionInExam defines the presentation order and the answer-index
	// correspondence used when grading a submission.
	PositionInExam int            `json:"position_in_exam" gorm:"not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
