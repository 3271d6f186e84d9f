package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleYAML = `
NODE_ENV: [development, test, production]
DEBUG: boolean
PORT:
  type: number
  default: 3000
API_KEY:
  type: string
  nullable: true
  secret: true
  description: Upstream API credential
FALLBACK:
  type: string
  default: null
LEVEL:
  values: [debug, info]
`

func TestParseYAML(t *testing.T) {
	s, err := ParseYAML([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"NODE_ENV", "DEBUG", "PORT", "API_KEY", "FALLBACK", "LEVEL"}, s.Names())

	want := Schema{
		Var("NODE_ENV", Enum{"development", "test", "production"}),
		Var("DEBUG", Boolean),
		Var("PORT", Descriptor{Type: Number, Default: NumberValue(3000)}),
		Var("API_KEY", Descriptor{Type: String, Nullable: true, Secret: true, Description: "Upstream API credential"}),
		Var("FALLBACK", Descriptor{Type: String, Default: NullValue()}),
		Var("LEVEL", Enum{"debug", "info"}),
	}
	assert.Equal(t, want, s)
}

func TestParseYAML_Validates(t *testing.T) {
	s, err := ParseYAML([]byte(sampleYAML))
	require.NoError(t, err)

	env, err := Validate(s, source(map[string]string{
		"NODE_ENV": "test",
		"DEBUG":    "on",
		"LEVEL":    "info",
	}))
	require.NoError(t, err)
	assert.Equal(t, 3000, env.Int("PORT"))
	assert.True(t, env.IsNull("FALLBACK"))
	assert.False(t, env.IsSet("API_KEY"))
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not a mapping", "- a\n- b\n"},
		{"unknown descriptor key", "PORT:\n  type: number\n  min: 1\n"},
		{"nested enum values", "MODE:\n  - [a]\n"},
		{"values not a list", "MODE:\n  values: a\n"},
		{"bad required flag", "PORT:\n  type: number\n  required: maybe\n"},
		{"invalid yaml", "PORT: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseYAML_Empty(t *testing.T) {
	s, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestParseJSON(t *testing.T) {
	doc := `{"PORT": {"type": "number", "default": 8080}, "MODE": ["a", "b"], "DEBUG": "boolean"}`

	s, err := ParseJSON([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"PORT", "MODE", "DEBUG"}, s.Names())

	spec, _ := s.Lookup("PORT")
	assert.Equal(t, Descriptor{Type: Number, Default: NumberValue(8080)}, spec)

	_, err = ParseJSON([]byte(`{"PORT": `))
	assert.True(t, errors.Is(err, ErrUnsupportedDocument))
}

func TestParseJSON_Escapes(t *testing.T) {
	doc := `{
		"URL": {"type": "string", "default": "http:\/\/x", "description": "caf\u00e9 \"main\"\tdb"},
		"FLAG": {"type": "string", "default": "true"},
		"RATIO": {"type": "number", "default": 1.5e2},
		"MODE": ["a\/b", "c"]
	}`

	s, err := ParseJSON([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"URL", "FLAG", "RATIO", "MODE"}, s.Names())

	want := Schema{
		Var("URL", Descriptor{Type: String, Default: StringValue("http://x"), Description: "caf\u00e9 \"main\"\tdb"}),
		Var("FLAG", Descriptor{Type: String, Default: StringValue("true")}),
		Var("RATIO", Descriptor{Type: Number, Default: NumberValue(150)}),
		Var("MODE", Enum{"a/b", "c"}),
	}
	assert.Equal(t, want, s)
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"not an object", `["a"]`},
		{"trailing data", `{"A": "number"} {"B": "number"}`},
		{"unknown descriptor key", `{"A": {"type": "number", "min": 1}}`},
		{"quoted flag", `{"A": {"type": "number", "required": "yes"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestSchema_Embedded(t *testing.T) {
	type appConfig struct {
		Name string `yaml:"name" json:"name"`
		Env  Schema `yaml:"env" json:"env"`
	}

	var fromYAML appConfig
	require.NoError(t, yaml.Unmarshal([]byte("name: api\nenv:\n  PORT: number\n  MODE: [a, b]\n"), &fromYAML))
	assert.Equal(t, Schema{Var("PORT", Number), Var("MODE", Enum{"a", "b"})}, fromYAML.Env)

	var fromJSON appConfig
	require.NoError(t, json.Unmarshal([]byte(`{"name":"api","env":{"PORT":"number","MODE":["a","b"]}}`), &fromJSON))
	assert.Equal(t, fromYAML.Env, fromJSON.Env)
}
