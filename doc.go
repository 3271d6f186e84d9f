/*
Package safeenv validates and type-casts environment variables against a
declared schema at process startup.

Declare the expected variables once, validate them before anything else runs,
and hand the resulting immutable *schema.Env to the rest of the program. If any
variable is missing or malformed, Load returns a single *schema.ValidationError
listing every problem, so an operator can fix all of them from one read.

# Usage

	package main

	import (
		"context"
		"log"

		safeenv "github.com/nicocarlier/safe-env-lite"
		"github.com/nicocarlier/safe-env-lite/pkg/schema"
	)

	var envSchema = schema.Schema{
		schema.Var("NODE_ENV", schema.Enum{"development", "test", "production"}),
		schema.Var("PORT", schema.Descriptor{Type: schema.Number, Default: schema.NumberValue(3000)}),
		schema.Var("DEBUG", schema.Descriptor{Type: schema.Boolean, Default: schema.BoolValue(false)}),
		schema.Var("DATABASE_URL", schema.String),
	}

	func main() {
		env, err := safeenv.Load(context.Background(), envSchema)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("listening on :%d", env.Int("PORT"))
	}

# Sources

Values come from the process environment by default. Any ports.Source can be
injected with WithSource: an in-memory map for tests, a prefixed view of the
process environment, or a snapshot of a Redis hash.

# Observability

WithLogger attaches a *slog.Logger; WithLifecycleHooks attaches callbacks that
receive one event per resolved variable, one per problem and one summary.
Values of secret variables never reach either.
*/
package safeenv
