package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nicocarlier/safe-env-lite/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "safeenv",
	Short: "safeenv validates environment variables against a schema",
	Long: `safeenv reads a schema document (YAML or JSON) describing the environment
variables an application expects, then checks, documents or serves the
resolved configuration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// The report has already been printed.
		if !errors.Is(err, cli.ErrInvalidEnvironment) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("schema", "s", "env.schema.yaml", "Schema document (.yaml, .yml or .json)")
	rootCmd.PersistentFlags().String("log-level", "", "Log to stderr at this level (debug, info, warn, error)")
}

// baseOptions reads the persistent flags.
func baseOptions(cmd *cobra.Command) cli.Options {
	schemaPath, _ := cmd.Flags().GetString("schema")
	logLevel, _ := cmd.Flags().GetString("log-level")
	return cli.Options{SchemaPath: schemaPath, LogLevel: logLevel}
}

// addSourceFlags registers the flags selecting where values are read from.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", cli.SourceEnv, "Where to read values from (env or redis)")
	cmd.Flags().String("prefix", "", "Read PREFIX+NAME from the process environment")
	cmd.Flags().String("redis-addr", "localhost:6379", "Redis address (password from SAFEENV_REDIS_PASSWORD)")
	cmd.Flags().String("redis-key", "", "Redis hash holding the variables (default safeenv:env)")
}

func sourceOptions(cmd *cobra.Command, opts cli.Options) cli.Options {
	opts.Source, _ = cmd.Flags().GetString("source")
	opts.Prefix, _ = cmd.Flags().GetString("prefix")
	opts.RedisAddr, _ = cmd.Flags().GetString("redis-addr")
	opts.RedisKey, _ = cmd.Flags().GetString("redis-key")
	return opts
}
