package repository

import (
	"github.com/hqtran/examportal/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(student *model.Student) error
	FindByID(id uint) (*model.Student, error)
	FindByRegistrationNo(registrationNo string) (*model.Student, error)
	FindPageByAdmin(adminID uint, offset, limit int) ([]model.Student, int64, error)
	Update(student *model.Student) error
	Delete(adminID, id uint) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByRegistrationNo(registrationNo string) (*model.Student, error) {
	var student model.Student
	if err := r.db.Where("registration_no = ?", registrationNo).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindPageByAdmin(adminID uint, offset, limit int) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64
	if err := r.db.Model(&model.Student{}).Where("admin_id = ?", adminID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("admin_id = ?", adminID).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&students).Error
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (r *studentRepository) Update(student *model.Student) error {
	return r.db.Save(student).Error
}

func (r *studentRepository) Delete(adminID, id uint) error {
	res := r.db.Where("admin_id = ?", adminID).Delete(&model.Student{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
