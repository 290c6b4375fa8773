package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodyTVWeber/inversemod/inverse"
)

var (
	solveModeFlag  string
	solveSteps     bool
	solveNaive     bool
	solveNoRecover bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <x> <y>",
	Short: "Compute the inverse of x mod y",
	Args:  cobra.ExactArgs(2),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveModeFlag, "mode", "guaranteed", "heuristic or guaranteed")
	solveCmd.Flags().BoolVar(&solveSteps, "steps", false, "narrate the multiplier-remainder trace")
	solveCmd.Flags().BoolVar(&solveNaive, "naive", false, "use the original multiplier rule with its known dead end")
	solveCmd.Flags().BoolVar(&solveNoRecover, "no-recover", false, "disable offset retries and parity backtracking")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	base, modulus, err := parsePair(args)
	if err != nil {
		return err
	}
	mode, err := parseMode(solveModeFlag)
	if err != nil {
		return err
	}

	literal := inverse.DefaultParametersLiteral
	literal.NaiveBaseline = solveNaive
	if solveNoRecover {
		literal.LocalOffsetRetry = false
		literal.ParityBacktrack = false
	}

	out := inverse.NewSolver(literal.Compile()).Solve(base, modulus, mode)

	if solveSteps {
		fmt.Print(out.Steps())
		if !out.OK {
			return fmt.Errorf("no inverse found: %s", out.Reason)
		}
		return nil
	}

	if !out.OK {
		if out.Reason == inverse.ReasonNotCoprime {
			return fmt.Errorf("no inverse exists: gcd(%d, %d) = %d", base, modulus, out.Gcd)
		}
		return fmt.Errorf("no inverse found: %s", out.Reason)
	}

	fmt.Println(out.Inverse)
	return nil
}
