package model

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Name            string    `json:"name" gorm:"not null"`
	RegistrationNo  string    `json:"registration_no" gorm:"not null;uniqueIndex:idx_students_registration_no,where:deleted_at IS NULL"`
	Course          string    `json:"course" gorm:"not null"`
	DateOfAdmission time.Time `json:"date_of_admission" gorm:"not null"`
	CourseDuration  string    `json:"course_duration" gorm:"not null"`
	DateOfBirth     time.Time `json:"date_of_birth" gorm:"not null"`
	MothersName     string    `json:"mothers_name" gorm:"not null"`
	FathersName     string    `json:"fathers_name" gorm:"not null"`
	Address         string    `json:"address" gorm:"not null"`
	Grade           string    `json:"grade" gorm:"not null"`
	ProfilePic      *string   `json:"profile_pic,omitempty"`
	CertificatePic  *string   `json:"certificate_pic,omitempty"`
	QRCode          string    `json:"qr_code,omitempty" gorm:"type:text"`
	PasswordHash    string    `json:"-" gorm:"type:text"`
	AdminID         uint      `json:"admin_id" gorm:"not null;index"`
	// AttendedExams counts completed attempts; mutated only by the attempt engine.
	AttendedExams int              `json:"attended_exams" gorm:"not null;default:0"`
	Assignments   []ExamAssignment `json:"assignments,omitempty" gorm:"foreignKey:StudentID"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
}
