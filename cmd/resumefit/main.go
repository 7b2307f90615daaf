// Command resumefit scores a résumé against a job description from the
// command line, using the heuristic pipeline, and prints the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resumefit-backend/internal/analyzer"
	"resumefit-backend/internal/taxonomy"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		resumePath   string
		jobPath      string
		taxonomyPath string
		pretty       bool
	)

	cmd := &cobra.Command{
		Use:           "resumefit",
		Short:         "Score a résumé against a job description",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, resumePath, jobPath, taxonomyPath, pretty)
		},
	}

	cmd.Flags().StringVar(&resumePath, "resume", "", "path to the résumé text file")
	cmd.Flags().StringVar(&jobPath, "job", "", "path to the job description text file")
	cmd.Flags().StringVar(&taxonomyPath, "taxonomy", "", "optional YAML taxonomy override")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	_ = cmd.MarkFlagRequired("resume")
	_ = cmd.MarkFlagRequired("job")

	return cmd
}

func run(cmd *cobra.Command, resumePath, jobPath, taxonomyPath string, pretty bool) error {
	resumeText, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	jobText, err := os.ReadFile(jobPath)
	if err != nil {
		return fmt.Errorf("read job description: %w", err)
	}

	tax := taxonomy.Default()
	if taxonomyPath != "" {
		tax, err = taxonomy.LoadFile(taxonomyPath)
		if err != nil {
			return err
		}
	}

	a := analyzer.New(tax, nil)
	outcome, err := a.Analyze(context.Background(), analyzer.Input{
		ResumeText:         string(resumeText),
		JobDescriptionText: string(jobText),
	})
	if err != nil {
		return err
	}

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(outcome.Result, "", "  ")
	} else {
		out, err = json.Marshal(outcome.Result)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
