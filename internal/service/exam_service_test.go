package service

import (
	"testing"

	"github.com/hqtran/examportal/internal/apperr"
	"github.com/hqtran/examportal/internal/dto"
	"github.com/hqtran/examportal/internal/model"
	"github.com/hqtran/examportal/internal/repository"
	"gorm.io/gorm"
)

func newExamService(db *gorm.DB) ExamService {
	return NewExamService(
		repository.NewExamRepository(db),
		repository.NewAssignmentRepository(db),
	)
}

func TestExamDelete_RemovesQuestionsToo(t *testing.T) {
	db := newTestDB(t)
	svc := newExamService(db)
	exam := seedExam(t, db, "Algebra", "B", "C")

	if err := svc.Delete(exam.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := svc.Get(exam.ID)
	assertKind(t, err, apperr.KindNotFound)

	var liveQuestions int64
	if err := db.Model(&model.Question{}).Where("exam_id = ?", exam.ID).Count(&liveQuestions).Error; err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if liveQuestions != 0 {
		t.Fatalf("expected questions to be deleted with the exam, %d remain", liveQuestions)
	}
}

func TestExamDelete_UnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := newExamService(db)
	assertKind(t, svc.Delete(999), apperr.KindNotFound)
}

func TestSearchByTitle_CaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := newExamService(db)
	seedExam(t, db, "Algebra Midterm", "B")
	seedExam(t, db, "Geometry Final", "C")

	exams, err := svc.SearchByTitle("ALGEBRA")
	if err != nil {
		t.Fatalf("SearchByTitle: %v", err)
	}
	if len(exams) != 1 || exams[0].Title != "Algebra Midterm" {
		t.Fatalf("unexpected search result: %+v", exams)
	}

	_, err = svc.SearchByTitle("calculus")
	assertKind(t, err, apperr.KindNotFound)

	_, err = svc.SearchByTitle("   ")
	assertKind(t, err, apperr.KindInvalidInput)
}

func TestGetAssignedExams_StripsCorrectAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newExamService(db)
	student := seedStudent(t, db, "REG001")
	exam := seedExam(t, db, "Algebra", "B", "C")
	seedAssignment(t, db, student.ID, exam.ID)

	exams, err := svc.GetAssignedExams(student.ID)
	if err != nil {
		t.Fatalf("GetAssignedExams: %v", err)
	}
	if len(exams) != 1 {
		t.Fatalf("expected 1 assigned exam, got %d", len(exams))
	}
	if len(exams[0].Questions) != 2 {
		t.Fatalf("expected nested questions, got %d", len(exams[0].Questions))
	}
	for i, q := range exams[0].Questions {
		if q.PositionInExam != i+1 {
			t.Fatalf("expected questions in exam order, got %+v", exams[0].Questions)
		}
		if len(q.Options) != 4 {
			t.Fatalf("expected options to survive the student view: %+v", q)
		}
	}
}

func TestGetAssignedExams_SkipsDeletedExam(t *testing.T) {
	db := newTestDB(t)
	svc := newExamService(db)
	student := seedStudent(t, db, "REG001")
	kept := seedExam(t, db, "Algebra", "B")
	removed := seedExam(t, db, "Geometry", "C")
	seedAssignment(t, db, student.ID, kept.ID)
	seedAssignment(t, db, student.ID, removed.ID)

	if err := svc.Delete(removed.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	exams, err := svc.GetAssignedExams(student.ID)
	if err != nil {
		t.Fatalf("GetAssignedExams: %v", err)
	}
	if len(exams) != 1 || exams[0].ID != kept.ID {
		t.Fatalf("expected only the surviving exam, got %+v", exams)
	}
}

func TestGetAssignedExam_RequiresAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := newExamService(db)
	student := seedStudent(t, db, "REG001")
	exam := seedExam(t, db, "Algebra", "B")

	_, err := svc.GetAssignedExam(student.ID, exam.ID)
	assertKind(t, err, apperr.KindNotFound)

	seedAssignment(t, db, student.ID, exam.ID)
	got, err := svc.GetAssignedExam(student.ID, exam.ID)
	if err != nil {
		t.Fatalf("GetAssignedExam: %v", err)
	}
	if got.ID != exam.ID {
		t.Fatalf("unexpected exam: %+v", got)
	}
}

func TestExamUpdate_ReplacesMetadata(t *testing.T) {
	db := newTestDB(t)
	svc := newExamService(db)
	exam := seedExam(t, db, "Algebra", "B")

	updated, err := svc.Update(exam.ID, dto.ExamUpdateDTO{Title: "Algebra II", Description: "harder"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Algebra II" || updated.Description != "harder" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	_, err = svc.Update(999, dto.ExamUpdateDTO{Title: "x", Description: "y"})
	assertKind(t, err, apperr.KindNotFound)
}
