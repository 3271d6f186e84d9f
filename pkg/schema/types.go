package schema

import "fmt"

// Kind names one of the primitive types a variable can be coerced into.
// A bare Kind is also the shorthand form of a required variable.
type Kind string

const (
	String  Kind = "string"
	Number  Kind = "number"
	Boolean Kind = "boolean"
)

// Spec is a user-supplied declaration for a single variable.
// It is implemented by Kind, Enum and Descriptor only.
type Spec interface {
	normalize() field
}

// Enum is the shorthand form of a variable restricted to a fixed set of
// strings. Membership is exact and case-sensitive.
type Enum []string

// Descriptor is the long form of a primitive variable.
type Descriptor struct {
	Type Kind
	// Required fails validation when no raw value, default or nullable
	// marker provides the variable. A Default always satisfies it.
	Required bool
	// Default is used when the variable is absent. The zero Value means
	// "no default"; use NullValue for an explicit null.
	Default  Value
	Nullable bool
	// Description documents the variable; it has no effect on resolution.
	Description string
	// Secret masks the value in reports and logs.
	Secret bool
}

// Variable binds a name to its Spec.
type Variable struct {
	Name string
	Spec Spec
}

// Var declares a variable.
func Var(name string, spec Spec) Variable {
	return Variable{Name: name, Spec: spec}
}

// Schema is an ordered list of variable declarations.
// Order only affects the order of reported problems and of Env.Keys.
//
//	s := schema.Schema{
//	    schema.Var("NODE_ENV", schema.Enum{"development", "test", "production"}),
//	    schema.Var("PORT", schema.Descriptor{Type: schema.Number, Default: schema.NumberValue(3000)}),
//	    schema.Var("DEBUG", schema.Boolean),
//	}
type Schema []Variable

// Names returns the declared variable names in declaration order,
// with duplicates removed.
func (s Schema) Names() []string {
	entries := s.entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Lookup returns the effective Spec for name.
func (s Schema) Lookup(name string) (Spec, bool) {
	for _, e := range s.entries() {
		if e.name == name {
			return e.spec, true
		}
	}
	return nil, false
}

// Secret reports whether name is declared with Secret set.
func (s Schema) Secret(name string) bool {
	spec, ok := s.Lookup(name)
	if !ok {
		return false
	}
	d, ok := spec.(Descriptor)
	return ok && d.Secret
}

// Redact returns a copy of problems with the raw values of secret
// variables removed.
func (s Schema) Redact(problems []Problem) []Problem {
	out := make([]Problem, len(problems))
	for i, p := range problems {
		if p.Value != nil && s.Secret(p.Key) {
			p.Value = nil
		}
		out[i] = p
	}
	return out
}

type entry struct {
	name string
	spec Spec
}

// entries collapses duplicate names: a repeated name keeps the position of
// its first declaration and the Spec of its last one.
func (s Schema) entries() []entry {
	out := make([]entry, 0, len(s))
	pos := make(map[string]int, len(s))
	for _, v := range s {
		if i, ok := pos[v.Name]; ok {
			out[i].spec = v.Spec
			continue
		}
		pos[v.Name] = len(out)
		out = append(out, entry{name: v.Name, spec: v.Spec})
	}
	return out
}

// --- Normalized forms ---

// field is the canonical internal form of a Spec: either an enumField or a
// primitiveField.
type field interface {
	isField()
}

type enumField struct {
	values []string
}

type primitiveField struct {
	kind     Kind
	required bool
	def      Value
	nullable bool
	secret   bool
}

func (enumField) isField()      {}
func (primitiveField) isField() {}

func (k Kind) normalize() field {
	return primitiveField{kind: k, required: true}
}

func (e Enum) normalize() field {
	values := make([]string, len(e))
	copy(values, e)
	return enumField{values: values}
}

func (d Descriptor) normalize() field {
	return primitiveField{
		kind:     d.Type,
		required: d.Required,
		def:      d.Default,
		nullable: d.Nullable,
		secret:   d.Secret,
	}
}

// normalize never fails. A nil Spec becomes a required field of an empty
// Kind, which reports as missing or unsupported during validation.
func normalize(spec Spec) field {
	if spec == nil {
		return primitiveField{required: true}
	}
	return spec.normalize()
}

func (k Kind) valid() bool {
	switch k {
	case String, Number, Boolean:
		return true
	default:
		return false
	}
}

// ParseKind converts a type name into a Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if !k.valid() {
		return "", fmt.Errorf("unsupported type: %s", name)
	}
	return k, nil
}
