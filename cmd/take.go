package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wellcheck/internal/assessment"
	"github.com/abhisek/wellcheck/internal/catalog"
	"github.com/abhisek/wellcheck/internal/report"
)

var takeCmd = &cobra.Command{
	Use:   "take <catalog-id>",
	Short: "Answer a questionnaire line by line without the full-screen UI",
	Long: "Take asks each question in turn. Type an option number to answer,\n" +
		"\"b\" to go back, \"s\" to skip or \"q\" to stop early with a partial report.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := setup(cmd)
		if err != nil {
			return err
		}
		c, err := reg.Get(args[0])
		if err != nil {
			return err
		}

		engine := assessment.NewEngine()
		engine.Initialize(c)
		if err := prompt(cmd.InOrStdin(), cmd.OutOrStdout(), engine); err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		return writeReport(cmd.OutOrStdout(), engine.Finalize(), format, out)
	},
}

func init() {
	takeCmd.Flags().StringP("format", "f", "", "Report format: text, json, html or xlsx (default from --out, else text)")
	takeCmd.Flags().StringP("out", "o", "", "Write the report to a file instead of stdout")
}

// prompt walks the catalog in order, reading one answer per line from in.
// It returns when every question has been visited, on "q" or at EOF.
func prompt(in io.Reader, out io.Writer, engine *assessment.Engine) error {
	c := engine.Catalog()
	sc := bufio.NewScanner(in)
	section := ""

	for i := 0; i < c.QuestionCount(); {
		q, err := c.QuestionAt(i)
		if err != nil {
			return err
		}
		if q.SectionID != section {
			section = q.SectionID
			s, _ := c.Section(section)
			fmt.Fprintf(out, "\n== %s ==\n", s.Title)
		}
		printQuestion(out, c, q, i, engine)

		if !sc.Scan() {
			return sc.Err()
		}
		switch line := strings.ToLower(strings.TrimSpace(sc.Text())); line {
		case "q":
			return nil
		case "b":
			i = max(i-1, 0)
			section = ""
		case "s", "":
			i++
		default:
			n, err := strconv.Atoi(line)
			if err != nil || n < 1 || n > len(q.Options) {
				fmt.Fprintf(out, "Please enter a number from 1 to %d.\n", len(q.Options))
				continue
			}
			if err := engine.RecordAnswer(q.ID, q.Options[n-1].Category); err != nil {
				return err
			}
			printScores(out, c, q, engine)
			i++
		}
	}
	return nil
}

func printQuestion(out io.Writer, c *catalog.Catalog, q catalog.Question, i int, engine *assessment.Engine) {
	chosen, _ := engine.Answer(q.ID)
	fmt.Fprintf(out, "\n[%d/%d] %s\n", i+1, c.QuestionCount(), q.Prompt)
	for n, o := range q.Options {
		mark := " "
		if o.Category == chosen {
			mark = "*"
		}
		fmt.Fprintf(out, "  %s %d) %s\n", mark, n+1, o.Text)
	}
	fmt.Fprint(out, "> ")
}

// printScores prints the live percentages of every dimension q feeds.
func printScores(out io.Writer, c *catalog.Catalog, q catalog.Question, engine *assessment.Engine) {
	scores := engine.LiveScores()
	for _, dimID := range c.ContributesTo(q) {
		d, _ := c.Dimension(dimID)
		parts := make([]string, 0, len(d.Categories))
		for _, cat := range d.Categories {
			parts = append(parts, fmt.Sprintf("%s %d%%", report.Title(cat), scores[dimID][cat]))
		}
		fmt.Fprintf(out, "  %s: %s\n", d.Title, strings.Join(parts, " · "))
	}
}
