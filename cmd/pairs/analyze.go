package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bagdasarian/employees-pair/internal/domain"
	"github.com/bagdasarian/employees-pair/internal/service"
)

type analyzeOptions struct {
	distinctEmployees bool
	today             string
}

type entryOutput struct {
	FirstEmployeeID  int `json:"first_employee_id"`
	SecondEmployeeID int `json:"second_employee_id"`
	ProjectID        int `json:"project_id"`
	DaysWorked       int `json:"days_worked"`
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [file.csv]",
		Short: "Print shared project history of the longest-working pair as JSON",
		Long: `Analyzes a CSV file and prints the result as a JSON array.
Use "-" to read from stdin.

Example:
  pairs analyze assignments.csv
  pairs analyze --today 2024-01-01 --distinct-employees assignments.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.distinctEmployees, "distinct-employees", false, "ignore pairs of assignments of the same employee")
	cmd.Flags().StringVar(&opts.today, "today", "", "date used for open-ended assignments (YYYY-MM-DD), defaults to the current date")

	return cmd
}

func runAnalyze(cmd *cobra.Command, path string, opts *analyzeOptions) error {
	today := service.Clock(time.Now).Today()
	if opts.today != "" {
		parsed, err := time.Parse(domain.DateLayout, opts.today)
		if err != nil {
			return fmt.Errorf("invalid --today value %q: %w", opts.today, err)
		}
		today = parsed
	}

	input, closeInput, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer closeInput()

	assignments, err := service.ParseAssignments(input)
	if err != nil {
		return err
	}
	log.Debug().Int("assignments", len(assignments)).Str("today", today.Format(domain.DateLayout)).Msg("assignments parsed")

	entries, err := service.FindOverlaps(assignments, today, service.FinderOptions{
		DistinctEmployees: opts.distinctEmployees,
	})
	if err != nil {
		return err
	}

	return writeEntries(cmd.OutOrStdout(), entries)
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return file, func() { file.Close() }, nil
}

func writeEntries(w io.Writer, entries []domain.OverlapEntry) error {
	output := make([]entryOutput, 0, len(entries))
	for _, entry := range entries {
		output = append(output, entryOutput{
			FirstEmployeeID:  entry.FirstEmployeeID,
			SecondEmployeeID: entry.SecondEmployeeID,
			ProjectID:        entry.ProjectID,
			DaysWorked:       entry.DaysWorked,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
