package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sajidZ-904/LDSCO-Task/internal/statement"
)

func newExtractCmd() *cobra.Command {
	var (
		useSample   bool
		csvPath     string
		summaryPath string
	)

	cmd := &cobra.Command{
		Use:   "extract [statement.txt]",
		Short: "Extract portfolio figures from statement text",
		Long: `extract parses account statement text (converted from PDF upstream)
and reports the portfolio figures it finds. With --csv and --summary the
structured data and a narrative summary are written to files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data statement.StatementData
			switch {
			case useSample:
				data = statement.SampleStatement()
			case len(args) == 1:
				text, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read statement %s: %w", args[0], err)
				}
				data, err = statement.NewExtractor().Extract(string(text))
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("provide a statement text file or --sample")
			}

			if csvPath != "" {
				out, err := statement.ToCSV(data)
				if err != nil {
					return err
				}
				if err := os.WriteFile(csvPath, out, 0644); err != nil {
					return fmt.Errorf("failed to write CSV %s: %w", csvPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Statement data written to %s\n", csvPath)
			}
			if summaryPath != "" {
				if err := os.WriteFile(summaryPath, []byte(statement.Summary(data)), 0644); err != nil {
					return fmt.Errorf("failed to write summary %s: %w", summaryPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Summary written to %s\n", summaryPath)
			}
			if csvPath == "" && summaryPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), statement.Summary(data))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&useSample, "sample", false, "use the built-in sample statement")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write structured data to this CSV file")
	cmd.Flags().StringVar(&summaryPath, "summary", "", "write the narrative summary to this file")
	return cmd
}
