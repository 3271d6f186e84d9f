package main

import (
	"github.com/nicocarlier/safe-env-lite/internal/cli"
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Print a Markdown reference of the declared variables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Docs(baseOptions(cmd), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
