package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/rasterbench/internal/store"
)

var compareCmd = &cobra.Command{
	Use:   "compare <reference> <candidate>",
	Short: "Compare two generated images",
	Long: `Decodes two images written by the bench command (any supported format,
chosen by extension) and reports how many pixels differ and the largest
per-channel error. Exits non-zero when the images differ.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

var compareAllowDiff bool

func init() {
	compareCmd.Flags().BoolVar(&compareAllowDiff, "allow-diff", false, "Exit zero even when the images differ")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ref, err := store.Load(args[0])
	if err != nil {
		return err
	}
	cand, err := store.Load(args[1])
	if err != nil {
		return err
	}

	d, err := store.Compare(ref, cand)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Size: %dx%d (%d pixels)\n", ref.Cols, ref.Rows, d.Pixels)
	fmt.Fprintf(out, "Mismatched pixels: %d (%.2f%%)\n", d.Mismatched, percent(d.Mismatched, d.Pixels))
	fmt.Fprintf(out, "Max error: R=%d G=%d B=%d\n", d.MaxError[0], d.MaxError[1], d.MaxError[2])
	if d.FirstMismatch >= 0 {
		fmt.Fprintf(out, "First mismatch: pixel %d (row %d, col %d)\n",
			d.FirstMismatch, d.FirstMismatch/ref.Cols, d.FirstMismatch%ref.Cols)
	}

	if !d.Identical() && !compareAllowDiff {
		return fmt.Errorf("images differ in %d pixels", d.Mismatched)
	}
	return nil
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
