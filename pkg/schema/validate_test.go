package schema

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nicocarlier/safe-env-lite/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func source(values map[string]string) ports.Source {
	return ports.SourceFunc(func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	})
}

func TestValidate_Success(t *testing.T) {
	s := Schema{
		Var("NODE_ENV", Enum{"development", "test", "production"}),
		Var("PORT", Descriptor{Type: Number, Default: NumberValue(3000)}),
		Var("DEBUG", Boolean),
		Var("NAME", String),
	}

	env, err := Validate(s, source(map[string]string{
		"NODE_ENV": "production",
		"DEBUG":    "yes",
		"NAME":     "  padded  ",
		"IGNORED":  "x",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"NODE_ENV", "PORT", "DEBUG", "NAME"}, env.Keys())
	assert.Equal(t, "production", env.String("NODE_ENV"))
	assert.Equal(t, 3000.0, env.Number("PORT"))
	assert.True(t, env.Bool("DEBUG"))
	assert.Equal(t, "  padded  ", env.String("NAME"), "strings must not be trimmed")
	assert.False(t, env.Has("IGNORED"))
}

func TestValidate_ExactlyDeclaredKeys(t *testing.T) {
	s := Schema{
		Var("A", String),
		Var("B", Descriptor{Type: Number}),
		Var("C", Descriptor{Type: String, Nullable: true}),
	}

	env, err := Validate(s, source(map[string]string{"A": "a", "Z": "z"}))
	require.NoError(t, err)

	m := env.ToMap()
	assert.Len(t, m, 3)
	assert.Contains(t, m, "A")
	assert.Contains(t, m, "B")
	assert.Contains(t, m, "C")
	assert.Equal(t, 3, env.Len())
}

func TestValidate_Enum(t *testing.T) {
	s := Schema{Var("NODE_ENV", Enum{"development", "test", "production"})}

	t.Run("member", func(t *testing.T) {
		env, err := Validate(s, source(map[string]string{"NODE_ENV": "production"}))
		require.NoError(t, err)
		v, _ := env.Get("NODE_ENV")
		got, ok := v.AsString()
		assert.True(t, ok)
		assert.Equal(t, "production", got)
	})

	t.Run("not a member", func(t *testing.T) {
		env, err := Validate(s, source(map[string]string{"NODE_ENV": "staging"}))
		require.Error(t, err)
		assert.Nil(t, env)

		problems := Problems(err)
		require.Len(t, problems, 1)
		assert.Equal(t, "NODE_ENV", problems[0].Key)
		assert.Equal(t, "must be one of: development, test, production", problems[0].Message)
		assert.Equal(t, CodeInvalidEnum, problems[0].Code)
		require.NotNil(t, problems[0].Value)
		assert.Equal(t, "staging", *problems[0].Value)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, err := Validate(s, source(map[string]string{"NODE_ENV": "Production"}))
		require.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Validate(s, source(nil))
		problems := Problems(err)
		require.Len(t, problems, 1)
		assert.Equal(t, `is missing (enum: allowed "development", "test", "production")`, problems[0].Message)
		assert.Equal(t, CodeMissingEnum, problems[0].Code)
		assert.Nil(t, problems[0].Value)
	})
}

func TestValidate_Defaults(t *testing.T) {
	s := Schema{Var("PORT", Descriptor{Type: Number, Default: NumberValue(3000)})}

	env, err := Validate(s, source(nil))
	require.NoError(t, err)
	assert.Equal(t, 3000.0, env.Number("PORT"))

	env, err = Validate(s, source(map[string]string{"PORT": "4000"}))
	require.NoError(t, err)
	v, _ := env.Get("PORT")
	assert.Equal(t, Number, v.Kind())
	assert.Equal(t, 4000, env.Int("PORT"))
}

func TestValidate_DefaultIsNotCoerced(t *testing.T) {
	s := Schema{Var("PORT", Descriptor{Type: Number, Default: StringValue("not a number")})}

	env, err := Validate(s, source(nil))
	require.NoError(t, err)
	assert.Equal(t, "not a number", env.String("PORT"))
}

func TestValidate_Number(t *testing.T) {
	tests := []struct {
		raw   string
		want  float64
		valid bool
	}{
		{"42", 42, true},
		{"-3.5", -3.5, true},
		{"1e3", 1000, true},
		{" 7 ", 7, true},
		{"0x1p4", 16, true},
		{"abc", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"12px", 0, false},
		{"1e400", 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.raw), func(t *testing.T) {
			env, err := Validate(Schema{Var("N", Number)}, source(map[string]string{"N": tt.raw}))
			if !tt.valid {
				problems := Problems(err)
				require.Len(t, problems, 1)
				assert.Equal(t, "is not a valid number", problems[0].Message)
				require.NotNil(t, problems[0].Value)
				assert.Equal(t, tt.raw, *problems[0].Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, env.Number("N"))
		})
	}
}

func TestValidate_Boolean(t *testing.T) {
	tests := []struct {
		raw   string
		want  bool
		valid bool
	}{
		{"TRUE", true, true},
		{"true", true, true},
		{"yes", true, true},
		{"on", true, true},
		{"1", true, true},
		{"0", false, true},
		{"off", false, true},
		{"No", false, true},
		{"FALSE", false, true},
		{"maybe", false, false},
		{"", false, false},
		{" true", false, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.raw), func(t *testing.T) {
			env, err := Validate(Schema{Var("FLAG", Boolean)}, source(map[string]string{"FLAG": tt.raw}))
			if !tt.valid {
				problems := Problems(err)
				require.Len(t, problems, 1)
				assert.Equal(t, "is not a valid boolean", problems[0].Message)
				assert.Equal(t, CodeInvalidBoolean, problems[0].Code)
				return
			}
			require.NoError(t, err)
			v, _ := env.Get("FLAG")
			got, ok := v.AsBool()
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_NullableString(t *testing.T) {
	s := Schema{Var("API_KEY", Descriptor{Type: String, Nullable: true})}

	env, err := Validate(s, source(map[string]string{"API_KEY": "null"}))
	require.NoError(t, err)
	assert.True(t, env.IsNull("API_KEY"))

	env, err = Validate(s, source(nil))
	require.NoError(t, err)
	assert.True(t, env.Has("API_KEY"))
	assert.False(t, env.IsSet("API_KEY"))
	assert.False(t, env.IsNull("API_KEY"))

	// Without nullable the literal is an ordinary string.
	env, err = Validate(Schema{Var("API_KEY", String)}, source(map[string]string{"API_KEY": "null"}))
	require.NoError(t, err)
	assert.Equal(t, "null", env.String("API_KEY"))
}

func TestValidate_RequiredPresence(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"shorthand is required", String, true},
		{"long form defaults to optional", Descriptor{Type: String}, false},
		{"explicit required", Descriptor{Type: String, Required: true}, true},
		{"required with default", Descriptor{Type: String, Required: true, Default: StringValue("x")}, false},
		{"required with null default", Descriptor{Type: String, Required: true, Default: NullValue()}, false},
		{"required and nullable", Descriptor{Type: Number, Required: true, Nullable: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(Schema{Var("KEY", tt.spec)}, source(nil))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			problems := Problems(err)
			require.Len(t, problems, 1)
			assert.Equal(t, "is required but missing", problems[0].Message)
			assert.Equal(t, CodeRequired, problems[0].Code)
			assert.Nil(t, problems[0].Value)
		})
	}
}

func TestValidate_NullDefault(t *testing.T) {
	env, err := Validate(Schema{Var("KEY", Descriptor{Type: Number, Default: NullValue()})}, source(nil))
	require.NoError(t, err)
	assert.True(t, env.IsNull("KEY"))
}

func TestValidate_MultipleErrors(t *testing.T) {
	s := Schema{
		Var("PORT", Number),
		Var("OK", Descriptor{Type: String, Default: StringValue("fine")}),
		Var("DATABASE_URL", String),
	}

	env, err := Validate(s, source(map[string]string{"PORT": "abc"}))
	require.Error(t, err)
	assert.Nil(t, env)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Problems, 2)
	assert.Equal(t, []string{"PORT", "DATABASE_URL"}, verr.Keys())
	assert.Equal(t, CodeInvalidNumber, verr.Problems[0].Code)
	assert.Equal(t, CodeRequired, verr.Problems[1].Code)
}

func TestValidate_UnsupportedType(t *testing.T) {
	s := Schema{
		Var("PRESENT", Kind("int")),
		Var("ABSENT", Descriptor{Type: Kind("int")}),
	}

	_, err := Validate(s, source(map[string]string{"PRESENT": "1"}))
	problems := Problems(err)
	require.Len(t, problems, 1)
	assert.Equal(t, "PRESENT", problems[0].Key)
	assert.Equal(t, `has unsupported type "int"`, problems[0].Message)
}

func TestValidate_NilSpecAndSource(t *testing.T) {
	_, err := Validate(Schema{Var("KEY", nil)}, nil)
	problems := Problems(err)
	require.Len(t, problems, 1)
	assert.Equal(t, CodeRequired, problems[0].Code)
}

func TestValidate_EmptySchema(t *testing.T) {
	env, err := Validate(Schema{}, source(map[string]string{"A": "b"}))
	require.NoError(t, err)
	assert.Equal(t, 0, env.Len())

	env, err = Validate(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, env.Keys())
}

func TestValidate_DuplicateNames(t *testing.T) {
	s := Schema{
		Var("A", Number),
		Var("B", String),
		Var("A", Descriptor{Type: String, Default: StringValue("last")}),
	}

	env, err := Validate(s, source(map[string]string{"B": "b"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, env.Keys())
	assert.Equal(t, "last", env.String("A"))
}

func TestValidate_Idempotent(t *testing.T) {
	s := Schema{
		Var("PORT", Descriptor{Type: Number, Default: NumberValue(3000)}),
		Var("MODE", Enum{"a", "b"}),
		Var("KEY", Descriptor{Type: String, Nullable: true}),
	}
	src := source(map[string]string{"MODE": "b", "KEY": "null"})

	first, err := Validate(s, src)
	require.NoError(t, err)
	second, err := Validate(s, src)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.ToMap(), second.ToMap())
}

func TestValidate_SourceIsReadOnce(t *testing.T) {
	calls := make(map[string]int)
	src := ports.SourceFunc(func(key string) (string, bool) {
		calls[key]++
		return "1", true
	})

	_, err := Validate(Schema{Var("A", Number), Var("B", Boolean)}, src)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 1, "B": 1}, calls)
}
