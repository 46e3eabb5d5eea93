package cmd

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/wellcheck/internal/assessment"
	"github.com/abhisek/wellcheck/internal/catalog"
	"github.com/abhisek/wellcheck/internal/report"
)

// answerFile is the document read by "score". JSON is accepted too, being
// a subset of YAML. A bare question -> category map also works.
type answerFile struct {
	Catalog string            `yaml:"catalog"`
	Answers map[string]string `yaml:"answers"`
}

var scoreCmd = &cobra.Command{
	Use:   "score [catalog-id]",
	Short: "Score a file of answers and print the report",
	Long: "Score reads answers from a YAML or JSON file, for example:\n\n" +
		"  catalog: ayurveda\n  answers:\n    phys-frame: vata\n    phys-skin: pitta\n\n" +
		"Unanswered questions are allowed and produce a partial report.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := setup(cmd)
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("answers")
		af, err := readAnswers(path, cmd.InOrStdin())
		if err != nil {
			return err
		}
		if len(args) == 1 {
			af.Catalog = args[0]
		}
		if af.Catalog == "" {
			return fmt.Errorf("no catalog given: pass a catalog ID or set catalog in %s", path)
		}
		c, err := reg.Get(af.Catalog)
		if err != nil {
			return err
		}

		summary, err := score(c, af.Answers)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		return writeReport(cmd.OutOrStdout(), summary, format, out)
	},
}

func init() {
	scoreCmd.Flags().StringP("answers", "a", "", "YAML or JSON file of answers (\"-\" reads stdin)")
	scoreCmd.Flags().StringP("format", "f", "", "Report format: text, json, html or xlsx (default from --out, else text)")
	scoreCmd.Flags().StringP("out", "o", "", "Write the report to a file instead of stdout")
	_ = scoreCmd.MarkFlagRequired("answers")
}

// readAnswers decodes an answer file from path, or from stdin for "-".
func readAnswers(path string, stdin io.Reader) (answerFile, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return answerFile{}, fmt.Errorf("read answers: %w", err)
	}
	return parseAnswers(data)
}

func parseAnswers(data []byte) (answerFile, error) {
	var af answerFile
	if err := yaml.Unmarshal(data, &af); err != nil {
		return answerFile{}, fmt.Errorf("decode answers: %w", err)
	}
	if af.Answers != nil {
		return af, nil
	}

	var flat map[string]string
	if err := yaml.Unmarshal(data, &flat); err != nil {
		return answerFile{}, fmt.Errorf("decode answers: expected an answers map: %w", err)
	}
	delete(flat, "catalog")
	return answerFile{Catalog: af.Catalog, Answers: flat}, nil
}

// score records answers on a fresh engine in question-ID order and
// finalizes it.
func score(c *catalog.Catalog, answers map[string]string) (*assessment.ResultSummary, error) {
	engine := assessment.NewEngine()
	engine.Initialize(c)
	for _, qid := range slices.Sorted(maps.Keys(answers)) {
		if err := engine.RecordAnswer(qid, answers[qid]); err != nil {
			return nil, err
		}
	}
	return engine.Finalize(), nil
}

// writeReport renders summary to the file out, or to w when out is empty.
// An empty format is taken from the file extension, else text.
func writeReport(w io.Writer, summary *assessment.ResultSummary, format, out string) error {
	f := report.FormatText
	var err error
	switch {
	case format != "":
		f, err = report.ParseFormat(format)
	case out != "":
		f, err = report.FormatFromPath(out)
	}
	if err != nil {
		return err
	}

	doc := report.NewDocument(summary)
	if out == "" {
		return report.Render(w, f, doc)
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	file, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := report.Render(file, f, doc); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Report %s written to %s\n", doc.ID, out)
	return nil
}
