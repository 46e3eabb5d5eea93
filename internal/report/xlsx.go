package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	sheetScores          = "Scores"
	sheetRecommendations = "Recommendations"
	sheetAnswers         = "Answers"
)

// XLSX writes an Excel workbook with one sheet each for scores,
// recommendations and answers.
func XLSX(w io.Writer, doc Document) error {
	s := doc.Summary
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetScores); err != nil {
		return fmt.Errorf("create scores sheet: %w", err)
	}

	scores := [][]any{
		{s.Title},
		{"Report", doc.ID},
		{"Generated", doc.GeneratedAt.UTC()},
		{"Answered", s.Answered, "of", s.Total},
		{"Constitution", Title(s.Constitution.Type), s.Constitution.Description},
		{},
		{"Dimension", "Category", "Count", "Percent", "Dominant"},
	}
	for _, d := range s.Dimensions {
		for _, sc := range d.Scores {
			dominant := ""
			if sc.Category == d.Dominant {
				dominant = "yes"
			}
			scores = append(scores, []any{d.Title, Title(sc.Category), sc.Count, sc.Percent, dominant})
		}
	}
	if err := writeRows(f, sheetScores, scores); err != nil {
		return err
	}

	recs := [][]any{{"Kind", "Recommendation"}}
	for _, r := range s.Recommendations {
		for _, item := range r.Items {
			recs = append(recs, []any{Title(r.Kind), item})
		}
	}
	if _, err := f.NewSheet(sheetRecommendations); err != nil {
		return fmt.Errorf("create recommendations sheet: %w", err)
	}
	if err := writeRows(f, sheetRecommendations, recs); err != nil {
		return err
	}

	answers := [][]any{{"Section", "Question", "Category", "Answer"}}
	for _, a := range s.Answers {
		answers = append(answers, []any{a.SectionID, a.Prompt, Title(a.Category), a.Choice})
	}
	if _, err := f.NewSheet(sheetAnswers); err != nil {
		return fmt.Errorf("create answers sheet: %w", err)
	}
	if err := writeRows(f, sheetAnswers, answers); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx report: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
