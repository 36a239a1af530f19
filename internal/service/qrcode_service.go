package service

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/hqtran/examportal/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// QRCodeService renders the student identity card QR as a PNG data URL,
// matching what the admin frontend embeds directly in an <img> tag.
type QRCodeService interface {
	ForStudent(student *model.Student) (string, error)
}

type qrCodeService struct{}

func NewQRCodeService() QRCodeService {
	return &qrCodeService{}
}

type qrPayload struct {
	Name           string `json:"name"`
	RegistrationNo string `json:"registration_no"`
	Course         string `json:"course"`
	DateOfBirth    string `json:"date_of_birth"`
}

func (s *qrCodeService) ForStudent(student *model.Student) (string, error) {
	payload, err := json.Marshal(qrPayload{
		Name:           student.Name,
		RegistrationNo: student.RegistrationNo,
		Course:         student.Course,
		DateOfBirth:    student.DateOfBirth.Format(time.RFC3339),
	})
	if err != nil {
		return "", err
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
