package repository

import (
	"github.com/hqtran/examportal/internal/model"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(assignment *model.ExamAssignment) error
	Exists(studentID, examID uint) (bool, error)
	// FindByStudent returns assignments in assignment (append) order with
	// each exam and its ordered questions preloaded.
	FindByStudent(studentID uint) ([]model.ExamAssignment, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(assignment *model.ExamAssignment) error {
	return r.db.Create(assignment).Error
}

func (r *assignmentRepository) Exists(studentID, examID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.ExamAssignment{}).
		Where("student_id = ? AND exam_id = ?", studentID, examID).
		Count(&count).Error
	return count > 0, err
}

func (r *assignmentRepository) FindByStudent(studentID uint) ([]model.ExamAssignment, error) {
	var assignments []model.ExamAssignment
	err := r.db.Preload("Exam.Questions", orderedQuestions).
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&assignments).Error
	return assignments, err
}
