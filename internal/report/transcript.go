// Package report renders grade collections as XLSX transcripts.
package report

import (
	"fmt"
	"io"

	"github.com/phrazzld/gradebook/internal/domain"
	"github.com/phrazzld/gradebook/internal/domain/stats"
	"github.com/xuri/excelize/v2"
)

const (
	// TranscriptSheet lists one row per grade in insertion order.
	TranscriptSheet = "Transcript"
	// SummarySheet holds the aggregate statistics.
	SummarySheet = "Summary"

	// ContentType is the MIME type of the workbook produced by WriteTranscript.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// PassFailLabel is shown in place of a numeric grade for pass/fail exams.
	PassFailLabel = "Idoneo"
	// HonoursLabel is shown for the top grade with honours.
	HonoursLabel = "30 e lode"

	honoursGrade = 31
	dateLayout   = "2006-01-02"
)

var transcriptHeaders = []string{"Subject", "Grade", "Credits", "Date", "Professor", "Notes"}

// WriteTranscript writes an XLSX workbook with a transcript sheet listing
// grades and a summary sheet with the statistics in summary.
func WriteTranscript(w io.Writer, grades []domain.Grade, summary stats.Summary) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", TranscriptSheet); err != nil {
		return fmt.Errorf("failed to name transcript sheet: %w", err)
	}
	if err := writeGrades(f, grades); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeSummary(f, summary); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// GradeLabel returns the transcript text for a grade value.
func GradeLabel(grade int) string {
	switch grade {
	case domain.PassFailGrade:
		return PassFailLabel
	case honoursGrade:
		return HonoursLabel
	default:
		return fmt.Sprintf("%d", grade)
	}
}

func writeGrades(f *excelize.File, grades []domain.Grade) error {
	for i, header := range transcriptHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(TranscriptSheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header %q: %w", header, err)
		}
	}

	for i, g := range grades {
		row := i + 2
		var grade interface{} = g.Grade
		if g.Grade == domain.PassFailGrade || g.Grade == honoursGrade {
			grade = GradeLabel(g.Grade)
		}

		values := []interface{}{g.SubjectName, grade, g.Credits, "", g.Professor, g.Notes}
		if !g.Date.IsZero() {
			values[3] = g.Date.Format(dateLayout)
		}

		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(TranscriptSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}
	return nil
}

func writeSummary(f *excelize.File, s stats.Summary) error {
	rows := []struct {
		label string
		value interface{}
	}{
		{"Exams", s.Count},
		{"Graded exams", s.GradedCount},
		{"Pass/fail exams", s.PassFailCount},
		{"Total credits", s.TotalCredits},
		{"Credit target", s.CreditTarget},
		{"Weighted average", s.WeightedAverage},
		{"Arithmetic average", s.ArithmeticAverage},
		{"Graduation projection", s.GraduationProjection},
		{"Credit progress", s.CreditProgress},
	}

	for i, r := range rows {
		row := i + 1
		if err := f.SetCellValue(SummarySheet, fmt.Sprintf("A%d", row), r.label); err != nil {
			return fmt.Errorf("failed to write summary label: %w", err)
		}
		if err := f.SetCellValue(SummarySheet, fmt.Sprintf("B%d", row), r.value); err != nil {
			return fmt.Errorf("failed to write summary value: %w", err)
		}
	}
	return nil
}
