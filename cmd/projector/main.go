package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sajidZ-904/LDSCO-Task/internal/calculation"
)

var verbose bool

func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	if verbose {
		engine.SetLogger(calculation.StdLogger{})
	}
	return engine
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "projector",
		Short: "Retirement portfolio projection tools",
		Long: `projector computes long-horizon retirement portfolio projections:
a base-case future value with monthly compounding, conservative and
optimistic rate scenarios, a 20-year annuity income estimate and a
year-by-year growth series. It also extracts portfolio figures from
account statement text.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newProjectCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newExampleCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
