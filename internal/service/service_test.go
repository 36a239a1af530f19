package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/hqtran/examportal/config"
	"github.com/hqtran/examportal/internal/model"
	"github.com/hqtran/examportal/internal/repository"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory sqlite database per test. A single
// connection keeps every query on the same memory database and makes the
// unique-index behaviour deterministic.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Admin{},
		&model.Student{},
		&model.Exam{},
		&model.Question{},
		&model.ExamAssignment{},
		&model.AnswerRecord{},
		&model.RecordedAnswer{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTL = time.Hour
	return cfg
}

func seedStudent(t *testing.T, db *gorm.DB, registrationNo string) *model.Student {
	t.Helper()
	student := &model.Student{
		Name:            "Nguyen Van A",
		RegistrationNo:  registrationNo,
		Course:          "Computer Science",
		DateOfAdmission: time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
		CourseDuration:  "4 years",
		DateOfBirth:     time.Date(2004, 5, 20, 0, 0, 0, 0, time.UTC),
		MothersName:     "Tran Thi B",
		FathersName:     "Nguyen Van C",
		Address:         "12 Ly Thuong Kiet",
		Grade:           "A",
		AdminID:         1,
	}
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return student
}

// seedExam creates an exam whose questions are (text, correct) pairs with
// options fixed to A/B/C/D, in the given order.
func seedExam(t *testing.T, db *gorm.DB, title string, correct ...string) *model.Exam {
	t.Helper()
	exam := &model.Exam{Title: title, Description: "seeded exam"}
	if err := db.Create(exam).Error; err != nil {
		t.Fatalf("seed exam: %v", err)
	}
	for i, answer := range correct {
		q := &model.Question{
			ExamID:         exam.ID,
			QuestionText:   title + " question " + string(rune('1'+i)),
			Options:        model.Options{"A", "B", "C", "D"},
			CorrectAnswer:  answer,
			PositionInExam: i + 1,
		}
		if err := db.Create(q).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
		exam.Questions = append(exam.Questions, *q)
	}
	return exam
}

func seedAssignment(t *testing.T, db *gorm.DB, studentID, examID uint) {
	t.Helper()
	if err := db.Create(&model.ExamAssignment{StudentID: studentID, ExamID: examID}).Error; err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
}

func newAttemptService(db *gorm.DB) AttemptService {
	return NewAttemptService(
		repository.NewStudentRepository(db),
		repository.NewExamRepository(db),
		repository.NewAssignmentRepository(db),
		repository.NewAnswerRecordRepository(db),
		db,
	)
}
