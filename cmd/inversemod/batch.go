package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CodyTVWeber/inversemod/batch"
	"github.com/CodyTVWeber/inversemod/inverse"
)

var (
	batchModeFlag   string
	batchMinModulus uint64
	batchMaxModulus uint64
	batchSamples    int
	batchSeed       string
	batchCSVPath    string
	batchChartPath  string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Sweep input ranges and report heuristic statistics",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchModeFlag, "mode", "heuristic", "heuristic or guaranteed")
	batchCmd.Flags().Uint64Var(&batchMinModulus, "min-modulus", 2, "smallest modulus to sweep")
	batchCmd.Flags().Uint64Var(&batchMaxModulus, "max-modulus", 100, "largest modulus to sweep")
	batchCmd.Flags().IntVar(&batchSamples, "samples", 0, "sample this many random coprime pairs instead of sweeping")
	batchCmd.Flags().StringVar(&batchSeed, "seed", "", "sampler seed (random when empty)")
	batchCmd.Flags().StringVar(&batchCSVPath, "csv", "", "write per-pair records to this CSV file")
	batchCmd.Flags().StringVar(&batchChartPath, "chart", "", "write a per-modulus HTML chart to this file")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	mode, err := parseMode(batchModeFlag)
	if err != nil {
		return err
	}
	if batchMinModulus < 2 || batchMaxModulus < batchMinModulus {
		return fmt.Errorf("modulus range [%d, %d] is invalid", batchMinModulus, batchMaxModulus)
	}

	solver := inverse.NewSolver(inverse.DefaultParametersLiteral.Compile())
	runner := batch.NewRunner(solver, mode)

	var records []batch.Record
	if batchSamples > 0 {
		sampler := batch.NewPairSampler()
		if batchSeed != "" {
			sampler = batch.NewPairSamplerWithSeed([]byte(batchSeed))
		}
		records = runner.Sample(sampler, batchSamples, batchMaxModulus)
	} else {
		records = runner.Sweep(batchMinModulus, batchMaxModulus)
	}

	summary := batch.Summarize(records)
	logger.Info("batch complete",
		zap.Int("pairs", summary.Total),
		zap.Int("coprime", summary.Coprime),
		zap.Int("heuristic_successes", summary.HeuristicSuccesses),
		zap.Int("fallback_successes", summary.FallbackSuccesses),
		zap.Int("exhausted", summary.Exhausted),
		zap.Float64("heuristic_rate", summary.HeuristicRate()),
		zap.Float64("mean_steps", summary.MeanSteps),
		zap.Int("max_steps", summary.MaxSteps),
	)

	if batchCSVPath != "" {
		if err := writeFile(batchCSVPath, func(f *os.File) error {
			return batch.WriteCSV(f, records)
		}); err != nil {
			return err
		}
		logger.Info("wrote csv", zap.String("path", batchCSVPath))
	}

	if batchChartPath != "" {
		stats := batch.GroupByModulus(records)
		if err := writeFile(batchChartPath, func(f *os.File) error {
			return batch.WriteChartHTML(f, stats)
		}); err != nil {
			return err
		}
		logger.Info("wrote chart", zap.String("path", batchChartPath))
	}

	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
