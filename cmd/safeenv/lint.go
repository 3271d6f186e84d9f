package main

import (
	"github.com/nicocarlier/safe-env-lite/internal/cli"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check the schema document for mistakes",
	Long:  `Reports unsupported types, empty enums, duplicate declarations and defaults that do not match their declared type.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Lint(baseOptions(cmd), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
