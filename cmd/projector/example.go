package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sajidZ-904/LDSCO-Task/internal/config"
)

func newExampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example [path]",
		Short: "Write an example YAML input file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "inputs.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.NewInputParser().WriteExampleFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example inputs written to %s\n", path)
			return nil
		},
	}
	return cmd
}
