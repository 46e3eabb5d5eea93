package report

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

// Text writes a plain-text report.
func Text(w io.Writer, doc Document) error {
	s := doc.Summary
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", s.Title)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", utf8.RuneCountInString(s.Title)))
	fmt.Fprintf(&b, "Report:    %s\n", doc.ID)
	fmt.Fprintf(&b, "Generated: %s\n", doc.GeneratedAt.UTC().Format(time.RFC3339))
	status := "incomplete"
	if s.Complete {
		status = "complete"
	}
	fmt.Fprintf(&b, "Answered:  %d of %d (%s)\n", s.Answered, s.Total, status)

	b.WriteString("\nConstitution\n")
	if s.Constitution.Determined {
		fmt.Fprintf(&b, "  Type: %s\n", Title(s.Constitution.Type))
	}
	fmt.Fprintf(&b, "  %s\n", s.Constitution.Description)

	for _, d := range s.Dimensions {
		fmt.Fprintf(&b, "\n%s\n", d.Title)
		width := 0
		for _, sc := range d.Scores {
			width = max(width, utf8.RuneCountInString(Title(sc.Category)))
		}
		for _, sc := range d.Scores {
			label := Title(sc.Category)
			pad := strings.Repeat(" ", width-utf8.RuneCountInString(label))
			fmt.Fprintf(&b, "  %s%s %3d%%  (%d)\n", label, pad, sc.Percent, sc.Count)
		}
		if d.Dominant == "" {
			b.WriteString("  Dominant: none\n")
			continue
		}
		fmt.Fprintf(&b, "  Dominant: %s\n", Title(d.Dominant))
		if d.Interpretation != "" {
			fmt.Fprintf(&b, "  %s\n", d.Interpretation)
		}
	}

	if len(s.Recommendations) > 0 {
		b.WriteString("\nRecommendations\n")
		for _, r := range s.Recommendations {
			fmt.Fprintf(&b, "  %s\n", Title(r.Kind))
			for _, item := range r.Items {
				fmt.Fprintf(&b, "    - %s\n", item)
			}
		}
	}

	if len(s.Answers) > 0 {
		b.WriteString("\nAnswers\n")
		for i, a := range s.Answers {
			fmt.Fprintf(&b, "  %2d. %s\n      %s\n", i+1, a.Prompt, a.Choice)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
