package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/rasterbench/internal/cpu"
)

var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rasterbench version %s (%s)\n", version, cpu.Detect().Architecture)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
