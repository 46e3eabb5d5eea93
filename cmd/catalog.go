package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/wellcheck/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse and validate question catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := setup(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-16s  %-44s  %9s  %8s\n", "ID", "Title", "Questions", "Sections")
		fmt.Fprintln(out, strings.Repeat("─", 84))
		for _, c := range reg.All() {
			fmt.Fprintf(out, "%-16s  %-44s  %9d  %8d\n", c.ID, truncate(c.Title, 44), c.QuestionCount(), len(c.Sections))
		}
		fmt.Fprintf(out, "\n%d catalogs\n", reg.Len())
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <catalog-id>",
	Short: "Print a catalog's sections, questions and options",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := setup(cmd)
		if err != nil {
			return err
		}
		c, err := reg.Get(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", c.Title, c.ID)
		if c.Description != "" {
			fmt.Fprintln(out, c.Description)
		}
		fmt.Fprintln(out)

		fmt.Fprintln(out, "Dimensions:")
		for _, d := range c.Dimensions {
			fmt.Fprintf(out, "  %-12s %s [%s]\n", d.ID, d.Title, strings.Join(d.Categories, ", "))
		}

		for _, s := range c.Sections {
			fmt.Fprintf(out, "\n%s\n", s.Title)
			for _, q := range s.Questions {
				fmt.Fprintf(out, "  %-20s %s\n", q.ID, q.Prompt)
				for _, o := range q.Options {
					fmt.Fprintf(out, "    %-18s %s\n", o.Category, o.Text)
				}
			}
		}
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check catalog YAML files without loading them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err == nil {
				_, err = catalog.Parse(data)
			}
			if err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d catalogs invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
