package main

import (
	"github.com/spf13/cobra"

	"github.com/CodyTVWeber/inversemod/inverse"
	"github.com/CodyTVWeber/inversemod/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8000", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	solver := inverse.NewSolver(inverse.DefaultParametersLiteral.Compile())
	return server.New(solver, logger).Run(serveAddr)
}
