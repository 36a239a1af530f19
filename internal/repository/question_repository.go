package repository

import (
	"github.com/hqtran/examportal/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	// CreateAtEnd inserts the question at the end of its exam's ordered
	// sequence. Position assignment and insert run in one transaction.
	CreateAtEnd(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByExamID(examID uint) ([]model.Question, error)
	ExistsByExamAndText(examID uint, questionText string) (bool, error)
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) CreateAtEnd(question *model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var maxPos int
		err := tx.Model(&model.Question{}).
			Where("exam_id = ?", question.ExamID).
			Select("COALESCE(MAX(position_in_exam), 0)").
			Scan(&maxPos).Error
		if err != nil {
			return err
		}
		question.PositionInExam = maxPos + 1
		return tx.Create(question).Error
	})
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByExamID(examID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("exam_id = ?", examID).
		Order("position_in_exam ASC").
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) ExistsByExamAndText(examID uint, questionText string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Question{}).
		Where("exam_id = ? AND question_text = ?", examID, questionText).
		Count(&count).Error
	return count > 0, err
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
