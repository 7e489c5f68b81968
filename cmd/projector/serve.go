package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sajidZ-904/LDSCO-Task/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection engine over HTTP",
		Long: `serve starts an HTTP server exposing POST /api/v1/projection.
Each request is stateless and computed independently, so the endpoint is
safe under unlimited concurrency.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
			return server.New(newEngine()).ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
