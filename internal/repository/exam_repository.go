package repository

import (
	"github.com/hqtran/examportal/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithQuestions(id uint) (*model.Exam, error)
	FindAllWithQuestions() ([]model.Exam, error)
	SearchByTitle(title string) ([]model.Exam, error)
	Update(exam *model.Exam) error
	// Delete soft-deletes the exam and its questions in one transaction, so
	// no live question can dangle off a deleted exam.
	Delete(id uint) error
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("questions.position_in_exam ASC")
}

func (r *examRepository) Create(exam *model.Exam) error {
	return r.db.Create(exam).Error
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.Preload("Questions", orderedQuestions).First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindAllWithQuestions() ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.Preload("Questions", orderedQuestions).
		Order("exams.created_at DESC").
		Find(&exams).Error
	return exams, err
}

func (r *examRepository) SearchByTitle(title string) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.Preload("Questions", orderedQuestions).
		Where("LOWER(title) LIKE ?", "%"+title+"%").
		Order("exams.created_at DESC").
		Find(&exams).Error
	return exams, err
}

func (r *examRepository) Update(exam *model.Exam) error {
	return r.db.Save(exam).Error
}

func (r *examRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Exam{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("exam_id = ?", id).Delete(&model.Question{}).Error
	})
}
