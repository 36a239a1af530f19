package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/hqtran/examportal/internal/model"
)

func TestQRCode_EncodesStudentIdentity(t *testing.T) {
	svc := NewQRCodeService()
	student := &model.Student{
		Name:           "Nguyen Van A",
		RegistrationNo: "REG001",
		Course:         "Computer Science",
		DateOfBirth:    time.Date(2004, 5, 20, 0, 0, 0, 0, time.UTC),
	}

	dataURL, err := svc.ForStudent(student)
	if err != nil {
		t.Fatalf("ForStudent: %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(dataURL, prefix) {
		t.Fatalf("expected a PNG data URL, got %q", dataURL[:min(len(dataURL), 40)])
	}
	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Fatalf("payload is not a PNG image")
	}
}

func TestQRCode_DiffersPerStudent(t *testing.T) {
	svc := NewQRCodeService()
	a := &model.Student{Name: "A", RegistrationNo: "REG001", Course: "CS", DateOfBirth: time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC)}
	b := &model.Student{Name: "B", RegistrationNo: "REG002", Course: "CS", DateOfBirth: time.Date(2004, 1, 1, 0, 0, 0, 0, time.UTC)}

	qa, err := svc.ForStudent(a)
	if err != nil {
		t.Fatalf("ForStudent: %v", err)
	}
	qb, err := svc.ForStudent(b)
	if err != nil {
		t.Fatalf("ForStudent: %v", err)
	}
	if qa == qb {
		t.Fatal("expected distinct students to encode distinct QR codes")
	}
}
