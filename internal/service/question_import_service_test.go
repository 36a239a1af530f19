package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hqtran/examportal/internal/apperr"
	"github.com/hqtran/examportal/internal/repository"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func newImportService(db *gorm.DB) QuestionImportService {
	questions := NewQuestionService(
		repository.NewExamRepository(db),
		repository.NewQuestionRepository(db),
	)
	return NewQuestionImportService(questions)
}

// buildWorkbook writes rows (header included) into a fresh xlsx workbook
// and returns its serialized bytes.
func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := book.SetCellValue(sheet, ref, cell); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	buf, err := book.WriteToBuffer()
	if err != nil {
		t.Fatalf("serialize workbook: %v", err)
	}
	return buf
}

var importHeader = []string{"Question", "Option 1", "Option 2", "Option 3", "Correct Answer"}

func TestImportXLSX_CreatesQuestionsInRowOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newImportService(db)
	exam := seedExam(t, db, "Algebra")

	buf := buildWorkbook(t, [][]string{
		importHeader,
		{"2+2?", "3", "4", "5", "4"},
		{"3*3?", "6", "9", "12", "9"},
	})

	result, err := svc.ImportXLSX(exam.ID, buf)
	if err != nil {
		t.Fatalf("ImportXLSX: %v", err)
	}
	if result.Imported != 2 || len(result.Skipped) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	exams := newExamService(db)
	got, err := exams.Get(exam.ID)
	if err != nil {
		t.Fatalf("Get exam: %v", err)
	}
	if len(got.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got.Questions))
	}
	if got.Questions[0].QuestionText != "2+2?" || got.Questions[1].QuestionText != "3*3?" {
		t.Fatalf("questions out of row order: %+v", got.Questions)
	}
	if got.Questions[1].PositionInExam != 2 {
		t.Fatalf("expected positions to follow row order: %+v", got.Questions)
	}
}

func TestImportXLSX_SkipsBadRowsAndKeepsGoing(t *testing.T) {
	db := newTestDB(t)
	svc := newImportService(db)
	exam := seedExam(t, db, "Algebra")

	buf := buildWorkbook(t, [][]string{
		importHeader,
		{"2+2?", "3", "4", "5", "4"},
		{"", "", "", "", ""},                 // blank, silently ignored
		{"short row", "only option"},          // too few cells
		{"2+2?", "3", "4", "5", "4"},          // duplicate text
		{"5-1?", "3", "4", "5", "7"},          // correct answer not an option
		{"3*3?", "6", "9", "12", "9"},
	})

	result, err := svc.ImportXLSX(exam.ID, buf)
	if err != nil {
		t.Fatalf("ImportXLSX: %v", err)
	}
	if result.Imported != 2 {
		t.Fatalf("expected 2 imported, got %+v", result)
	}
	if len(result.Skipped) != 3 {
		t.Fatalf("expected 3 skipped rows, got %+v", result.Skipped)
	}
	for _, s := range result.Skipped {
		if !strings.HasPrefix(s, "row ") {
			t.Fatalf("skip reason should name the row: %q", s)
		}
	}
}

func TestImportXLSX_RejectsNonWorkbook(t *testing.T) {
	db := newTestDB(t)
	svc := newImportService(db)
	exam := seedExam(t, db, "Algebra")

	_, err := svc.ImportXLSX(exam.ID, strings.NewReader("this is not a workbook"))
	assertKind(t, err, apperr.KindInvalidInput)
}

func TestImportXLSX_RejectsHeaderOnlyWorkbook(t *testing.T) {
	db := newTestDB(t)
	svc := newImportService(db)
	exam := seedExam(t, db, "Algebra")

	buf := buildWorkbook(t, [][]string{importHeader})
	_, err := svc.ImportXLSX(exam.ID, buf)
	assertKind(t, err, apperr.KindInvalidInput)
}
