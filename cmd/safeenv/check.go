package main

import (
	"github.com/nicocarlier/safe-env-lite/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the environment against the schema",
	Long:  `Resolves every declared variable and reports all problems at once. Exits with status 1 when the environment is invalid.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := sourceOptions(cmd, baseOptions(cmd))
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Print, _ = cmd.Flags().GetBool("print")
		return cli.Check(cmd.Context(), opts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addSourceFlags(checkCmd)
	checkCmd.Flags().Bool("json", false, "Write the report as JSON")
	checkCmd.Flags().BoolP("print", "p", false, "Print resolved values (secrets masked)")
}
