package schema

import "github.com/nicocarlier/safe-env-lite/pkg/ports"

// Validate resolves every variable of schema against src.
// It returns the resolved environment, or a *ValidationError listing every
// failing variable in declaration order. A nil src behaves as an empty source.
func Validate(schema Schema, src ports.Source) (*Env, error) {
	if src == nil {
		src = ports.SourceFunc(func(string) (string, bool) { return "", false })
	}

	entries := schema.entries()
	env := newEnv(len(entries))
	var problems []Problem

	for _, e := range entries {
		f := normalize(e.spec)
		value, problem := resolve(e.name, f, src)
		if problem != nil {
			problems = append(problems, *problem)
			continue
		}
		env.set(e.name, value, isSecret(f))
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return env, nil
}

// resolve evaluates a single normalized field. At most one problem is
// reported per field.
func resolve(key string, f field, src ports.Source) (Value, *Problem) {
	raw, present := src.Lookup(key)

	switch f := f.(type) {
	case enumField:
		return checkEnum(key, f, raw, present)

	case primitiveField:
		candidate := f.def
		if present {
			v, problem := coerce(key, f, raw)
			if problem != nil {
				return Value{}, problem
			}
			candidate = v
		}

		provided := present || f.def.Defined() || f.nullable
		if !provided && f.required {
			p := newProblem(key, CodeRequired, "is required but missing")
			return Value{}, &p
		}
		return candidate, nil
	}

	// Unreachable: normalize only produces the two variants above.
	p := newProblem(key, CodeUnsupportedType, "has an unknown declaration")
	return Value{}, &p
}

func isSecret(f field) bool {
	p, ok := f.(primitiveField)
	return ok && p.secret
}
