// Command inversemod computes modular inverses with the
// multiplier-remainder search.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CodyTVWeber/inversemod/inverse"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "inversemod",
	Short: "Modular inverses via iterative remainder reduction",
	Long: "inversemod computes z with (z * x) mod y == 1 using a multiplier-remainder\n" +
		"search with bounded backtracking, falling back to the extended Euclidean\n" +
		"algorithm in guaranteed mode.",
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger honoring --verbose.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	return logger
}

// parseMode maps the --mode flag to a solver mode.
func parseMode(s string) (inverse.Mode, error) {
	switch s {
	case "guaranteed":
		return inverse.ModeGuaranteed, nil
	case "heuristic":
		return inverse.ModeHeuristicOnly, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want heuristic or guaranteed)", s)
}

// parsePair parses the x and y positional arguments.
func parsePair(args []string) (base, modulus uint64, err error) {
	base, err = strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("x must be a positive integer: %w", err)
	}
	modulus, err = strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("y must be a positive integer: %w", err)
	}
	return base, modulus, nil
}
