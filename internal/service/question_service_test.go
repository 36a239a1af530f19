package service

import (
	"testing"

	"github.com/hqtran/examportal/internal/apperr"
	"github.com/hqtran/examportal/internal/dto"
	"github.com/hqtran/examportal/internal/repository"
	"gorm.io/gorm"
)

func newQuestionService(db *gorm.DB) QuestionService {
	return NewQuestionService(
		repository.NewExamRepository(db),
		repository.NewQuestionRepository(db),
	)
}

func TestCreateQuestion_AppendsToExamSequence(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(db)
	exam := seedExam(t, db, "Algebra")

	first, err := svc.Create(dto.QuestionCreateDTO{
		ExamID:        exam.ID,
		QuestionText:  "What is 2+2?",
		Options:       []string{"3", "4"},
		CorrectAnswer: "4",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(dto.QuestionCreateDTO{
		ExamID:        exam.ID,
		QuestionText:  "What is 3+3?",
		Options:       []string{"5", "6"},
		CorrectAnswer: "6",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.PositionInExam != 1 || second.PositionInExam != 2 {
		t.Fatalf("expected positions 1 and 2, got %d and %d", first.PositionInExam, second.PositionInExam)
	}
}

func TestCreateQuestion_DuplicateTextConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(db)
	exam := seedExam(t, db, "Algebra")

	req := dto.QuestionCreateDTO{
		ExamID:        exam.ID,
		QuestionText:  "What is 2+2?",
		Options:       []string{"3", "4"},
		CorrectAnswer: "4",
	}
	if _, err := svc.Create(req); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(req)
	assertKind(t, err, apperr.KindConflict)

	questions, err := svc.ListByExam(exam.ID)
	if err != nil {
		t.Fatalf("ListByExam: %v", err)
	}
	// The sequence grew by exactly one, not two.
	if len(questions) != 1 {
		t.Fatalf("expected 1 question after rejected duplicate, got %d", len(questions))
	}
}

func TestCreateQuestion_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(db)
	exam := seedExam(t, db, "Algebra")

	tests := []struct {
		name string
		req  dto.QuestionCreateDTO
		kind apperr.Kind
	}{
		{
			name: "correct answer not among options",
			req: dto.QuestionCreateDTO{
				ExamID: exam.ID, QuestionText: "Q1",
				Options: []string{"A", "B"}, CorrectAnswer: "C",
			},
			kind: apperr.KindInvalidInput,
		},
		{
			name: "fewer than two options",
			req: dto.QuestionCreateDTO{
				ExamID: exam.ID, QuestionText: "Q2",
				Options: []string{"A"}, CorrectAnswer: "A",
			},
			kind: apperr.KindInvalidInput,
		},
		{
			name: "duplicate options",
			req: dto.QuestionCreateDTO{
				ExamID: exam.ID, QuestionText: "Q3",
				Options: []string{"A", "A"}, CorrectAnswer: "A",
			},
			kind: apperr.KindInvalidInput,
		},
		{
			name: "empty option",
			req: dto.QuestionCreateDTO{
				ExamID: exam.ID, QuestionText: "Q4",
				Options: []string{"A", ""}, CorrectAnswer: "A",
			},
			kind: apperr.KindInvalidInput,
		},
		{
			name: "unknown exam",
			req: dto.QuestionCreateDTO{
				ExamID: 999, QuestionText: "Q5",
				Options: []string{"A", "B"}, CorrectAnswer: "A",
			},
			kind: apperr.KindNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.req)
			assertKind(t, err, tc.kind)
		})
	}
}

func TestUpdateQuestion_RevalidatesOptions(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(db)
	exam := seedExam(t, db, "Algebra", "B")
	question := exam.Questions[0]

	_, err := svc.Update(question.ID, dto.QuestionUpdateDTO{
		QuestionText:  question.QuestionText,
		Options:       []string{"A", "B"},
		CorrectAnswer: "Z",
	})
	assertKind(t, err, apperr.KindInvalidInput)

	updated, err := svc.Update(question.ID, dto.QuestionUpdateDTO{
		QuestionText:  "Rephrased question",
		Options:       []string{"A", "B", "C"},
		CorrectAnswer: "C",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.CorrectAnswer != "C" || updated.PositionInExam != question.PositionInExam {
		t.Fatalf("update changed position or lost answer: %+v", updated)
	}
}

func TestDeleteQuestion_UnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(db)
	assertKind(t, svc.Delete(999), apperr.KindNotFound)
}

func TestDeleteQuestion_FreesTextForReuse(t *testing.T) {
	db := newTestDB(t)
	svc := newQuestionService(db)
	exam := seedExam(t, db, "Algebra")

	req := dto.QuestionCreateDTO{
		ExamID:        exam.ID,
		QuestionText:  "What is 2+2?",
		Options:       []string{"3", "4"},
		CorrectAnswer: "4",
	}
	first, err := svc.Create(req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// The deleted row must not block re-adding the same question.
	second, err := svc.Create(req)
	if err != nil {
		t.Fatalf("re-create after delete: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("expected a fresh question row, got the deleted one back")
	}

	questions, err := svc.ListByExam(exam.ID)
	if err != nil {
		t.Fatalf("ListByExam: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 live question, got %d", len(questions))
	}
}
