package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sajidZ-904/LDSCO-Task/internal/config"
	"github.com/sajidZ-904/LDSCO-Task/internal/output"
)

func newProjectCmd() *cobra.Command {
	var (
		inputFile string
		format    string
		toFile    bool
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run a projection from a YAML input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			report, err := newEngine().Project(inputs)
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q, available: %v", format, output.AvailableFormatterNames())
			}

			if toFile {
				filename, err := output.WriteFormatted(formatter, &report, formatter.Name())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}

			data, err := formatter.Format(&report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "inputs.yaml", "YAML input file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, csv, json)")
	cmd.Flags().BoolVarP(&toFile, "output-file", "o", false, "write to a timestamped file instead of stdout")
	return cmd
}
