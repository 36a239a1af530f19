package repository

import (
	"github.com/hqtran/examportal/internal/model"
	"gorm.io/gorm"
)

type AnswerRecordRepository interface {
	Exists(studentID, examID uint) (bool, error)
	// FindAllByStudent returns records newest-first with answers in
	// submission order and the exam preloaded.
	FindAllByStudent(studentID uint) ([]model.AnswerRecord, error)
}

type answerRecordRepository struct {
	db *gorm.DB
}

func NewAnswerRecordRepository(db *gorm.DB) AnswerRecordRepository {
	return &answerRecordRepository{db: db}
}

func (r *answerRecordRepository) Exists(studentID, examID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.AnswerRecord{}).
		Where("student_id = ? AND exam_id = ?", studentID, examID).
		Count(&count).Error
	return count > 0, err
}

func (r *answerRecordRepository) FindAllByStudent(studentID uint) ([]model.AnswerRecord, error) {
	var records []model.AnswerRecord
	err := r.db.Preload("Exam").
		Preload("Answers", orderedAnswers).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func orderedAnswers(db *gorm.DB) *gorm.DB {
	return db.Order("recorded_answers.position ASC")
}
