package dto

import "time"

// StudentCreateDTO carries all profile fields required to register a student.
type StudentCreateDTO struct {
	Name            string    `json:"name" binding:"required"`
	RegistrationNo  string    `json:"registration_no" binding:"required"`
	Course          string    `json:"course" binding:"required"`
	DateOfAdmission time.Time `json:"date_of_admission" binding:"required"`
	CourseDuration  string    `json:"course_duration" binding:"required"`
	DateOfBirth     time.Time `json:"date_of_birth" binding:"required"`
	MothersName     string    `json:"mothers_name" binding:"required"`
	FathersName     string    `json:"fathers_name" binding:"required"`
	Address         string    `json:"address" binding:"required"`
	Grade           string    `json:"grade" binding:"required"`
	ProfilePic      *string   `json:"profile_pic"`
	CertificatePic  *string   `json:"certificate_pic"`
	Password        string    `json:"password,omitempty"`
}

// StudentUpdateDTO mirrors StudentCreateDTO; updates are full replacements
// of the profile fields, as in the admin UI.
type StudentUpdateDTO = StudentCreateDTO

type StudentResponseDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	RegistrationNo  string    `json:"registration_no"`
	Course          string    `json:"course"`
	DateOfAdmission time.Time `json:"date_of_admission"`
	CourseDuration  string    `json:"course_duration"`
	DateOfBirth     time.Time `json:"date_of_birth"`
	MothersName     string    `json:"mothers_name"`
	FathersName     string    `json:"fathers_name"`
	Address         string    `json:"address"`
	Grade           string    `json:"grade"`
	ProfilePic      *string   `json:"profile_pic,omitempty"`
	CertificatePic  *string   `json:"certificate_pic,omitempty"`
	QRCode          string    `json:"qr_code,omitempty"`
	AttendedExams   int       `json:"attended_exams"`
	CreatedAt       time.Time `json:"created_at"`
}

// StudentListDTO is a paginated page of students.
type StudentListDTO struct {
	Students []StudentResponseDTO `json:"students"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	Pages    int                  `json:"pages"`
}
