package main

import (
	"fmt"
	"strings"

	safeenv "github.com/nicocarlier/safe-env-lite"
	"github.com/nicocarlier/safe-env-lite/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of safeenv",
	Run: func(cmd *cobra.Command, args []string) {
		banner, _ := cmd.Flags().GetBool("banner")
		version := strings.TrimSpace(safeenv.Version)
		if banner {
			tui.PrintBanner(cmd.OutOrStdout(), version)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "safeenv version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("banner", false, "Print the banner as well")
}
