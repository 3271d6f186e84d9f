// Package schema validates and type-casts raw string variables against a
// declared schema.
//
// A schema is an ordered list of variables. Each variable is declared in one
// of three forms: a bare type (String, Number, Boolean), a list of allowed
// values (Enum), or a long-form Descriptor.
//
// Basic usage:
//
//	s := schema.Schema{
//	    schema.Var("NODE_ENV", schema.Enum{"development", "test", "production"}),
//	    schema.Var("PORT", schema.Descriptor{Type: schema.Number, Default: schema.NumberValue(3000)}),
//	    schema.Var("DEBUG", schema.Descriptor{Type: schema.Boolean, Default: schema.BoolValue(false)}),
//	    schema.Var("API_KEY", schema.Descriptor{Type: schema.String, Nullable: true, Secret: true}),
//	}
//
//	env, err := schema.Validate(s, osenv.New())
//	if err != nil {
//	    // err is a *schema.ValidationError listing every failing variable
//	}
//	port := env.Int("PORT")
//
// Validation is a single synchronous pass. Every variable is checked even
// after a failure, so one run reports every misconfiguration at once.
//
// Schemas can also be read from YAML or JSON documents:
//
//	s, err := schema.ParseYAML(data)
//
// The returned Env is immutable. Env.Decode copies it into a tagged struct
// for a statically typed view.
package schema
