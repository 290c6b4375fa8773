package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodyTVWeber/inversemod/inverse"
)

var explainCmd = &cobra.Command{
	Use:   "explain [x y]",
	Short: "Describe the algorithm, or narrate a specific solve",
	Args:  cobra.RangeArgs(0, 2),
	RunE:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println(inverse.Explanation())
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("explain takes either no arguments or both x and y")
	}

	base, modulus, err := parsePair(args)
	if err != nil {
		return err
	}

	fmt.Print(inverse.Explain(base, modulus))
	return nil
}
