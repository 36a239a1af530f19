package model

import (
	"time"

	"gorm.io/gorm"
)

type Exam struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null;index"`
	Description string         `json:"description" gorm:"not null"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:ExamID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
