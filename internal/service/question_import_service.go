package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/hqtran/examportal/internal/apperr"
	"github.com/hqtran/examportal/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// QuestionImportService loads questions into an exam from an uploaded
// .xlsx workbook. Expected layout, one question per row starting at row 2:
// question text | option 1 | option 2 [| option N ...] | correct answer
// (the correct answer is always the last non-empty cell).
type QuestionImportService interface {
	ImportXLSX(examID uint, r io.Reader) (*dto.QuestionImportResultDTO, error)
}

type questionImportService struct {
	questions QuestionService
}

func NewQuestionImportService(questions QuestionService) QuestionImportService {
	return &questionImportService{questions: questions}
}

func (s *questionImportService) ImportXLSX(examID uint, r io.Reader) (*dto.QuestionImportResultDTO, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperr.InvalidInput("File is not a valid xlsx workbook")
	}
	defer book.Close()

	sheet := book.GetSheetName(0)
	if sheet == "" {
		return nil, apperr.InvalidInput("Workbook has no sheets")
	}
	rows, err := book.GetRows(sheet)
	if err != nil {
		return nil, apperr.InvalidInput("Could not read workbook rows")
	}
	if len(rows) < 2 {
		return nil, apperr.InvalidInput("Workbook has no question rows")
	}

	result := dto.QuestionImportResultDTO{}
	for i, row := range rows[1:] {
		rowNo := i + 2
		cells := trimRow(row)
		if len(cells) == 0 {
			continue
		}
		if len(cells) < 4 {
			result.Skipped = append(result.Skipped, fmt.Sprintf("row %d: need question, two options and a correct answer", rowNo))
			continue
		}

		req := dto.QuestionCreateDTO{
			ExamID:        examID,
			QuestionText:  cells[0],
			Options:       cells[1 : len(cells)-1],
			CorrectAnswer: cells[len(cells)-1],
		}
		if _, err := s.questions.Create(req); err != nil {
			if apperr.KindOf(err) == apperr.KindUnknown {
				log.Error().Err(err).Uint("examID", examID).Int("row", rowNo).Msg("ImportXLSX: database error")
				return nil, err
			}
			result.Skipped = append(result.Skipped, fmt.Sprintf("row %d: %s", rowNo, apperr.MessageOf(err)))
			continue
		}
		result.Imported++
	}
	return &result, nil
}

func trimRow(row []string) []string {
	cells := make([]string, 0, len(row))
	for _, c := range row {
		c = strings.TrimSpace(c)
		if c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}
