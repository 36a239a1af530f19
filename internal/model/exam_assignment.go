package model

import "time"

// ExamAssignment authorizes one student to attempt one exam. The unique
// index rejects duplicate assignment at the storage layer, so racing
// assign calls cannot both succeed.
type ExamAssignment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_exam_assignments_student_exam"`
	ExamID    uint      `json:"exam_id" gorm:"not null;uniqueIndex:idx_exam_assignments_student_exam"`
	Exam      Exam      `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
	CreatedAt time.Time `json:"created_at"`
}
