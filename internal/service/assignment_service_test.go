package service

import (
	"testing"

	"github.com/hqtran/examportal/internal/apperr"
	"github.com/hqtran/examportal/internal/model"
	"github.com/hqtran/examportal/internal/repository"
	"gorm.io/gorm"
)

func newAssignmentService(db *gorm.DB) AssignmentService {
	return NewAssignmentService(
		repository.NewStudentRepository(db),
		repository.NewExamRepository(db),
		repository.NewAssignmentRepository(db),
	)
}

func countAssignments(t *testing.T, db *gorm.DB, studentID, examID uint) int64 {
	t.Helper()
	var n int64
	err := db.Model(&model.ExamAssignment{}).
		Where("student_id = ? AND exam_id = ?", studentID, examID).
		Count(&n).Error
	if err != nil {
		t.Fatalf("count assignments: %v", err)
	}
	return n
}

func TestAssignExam_CreatesRelation(t *testing.T) {
	db := newTestDB(t)
	svc := newAssignmentService(db)
	student := seedStudent(t, db, "REG001")
	exam := seedExam(t, db, "Algebra", "B")

	if err := svc.AssignExam(student.ID, exam.ID); err != nil {
		t.Fatalf("AssignExam: %v", err)
	}
	if n := countAssignments(t, db, student.ID, exam.ID); n != 1 {
		t.Fatalf("expected 1 assignment, got %d", n)
	}
}

func TestAssignExam_SecondAssignConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newAssignmentService(db)
	student := seedStudent(t, db, "REG001")
	exam := seedExam(t, db, "Algebra", "B")

	if err := svc.AssignExam(student.ID, exam.ID); err != nil {
		t.Fatalf("first AssignExam: %v", err)
	}
	assertKind(t, svc.AssignExam(student.ID, exam.ID), apperr.KindConflict)

	if n := countAssignments(t, db, student.ID, exam.ID); n != 1 {
		t.Fatalf("expected exactly 1 assignment after rejected duplicate, got %d", n)
	}
}

func TestAssignExam_UnknownStudentOrExam(t *testing.T) {
	db := newTestDB(t)
	svc := newAssignmentService(db)
	student := seedStudent(t, db, "REG001")
	exam := seedExam(t, db, "Algebra", "B")

	assertKind(t, svc.AssignExam(999, exam.ID), apperr.KindNotFound)
	assertKind(t, svc.AssignExam(student.ID, 999), apperr.KindNotFound)
}

func TestAssignExam_PreservesAssignmentOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newAssignmentService(db)
	student := seedStudent(t, db, "REG001")
	first := seedExam(t, db, "Algebra", "B")
	second := seedExam(t, db, "Geometry", "C")

	if err := svc.AssignExam(student.ID, first.ID); err != nil {
		t.Fatalf("AssignExam: %v", err)
	}
	if err := svc.AssignExam(student.ID, second.ID); err != nil {
		t.Fatalf("AssignExam: %v", err)
	}

	assignments, err := repository.NewAssignmentRepository(db).FindByStudent(student.ID)
	if err != nil {
		t.Fatalf("FindByStudent: %v", err)
	}
	if len(assignments) != 2 || assignments[0].ExamID != first.ID || assignments[1].ExamID != second.ID {
		t.Fatalf("expected assignments in append order, got %+v", assignments)
	}
}
