package validator

import (
	"fmt"
	"strings"

	"github.com/nicocarlier/safe-env-lite/pkg/schema"
)

// ValidateSchema reports declarations that are legal but cannot behave as
// their author likely intended: unsupported types, empty enums, shadowed
// duplicates and defaults whose type differs from the declared one.
// It never looks at any environment.
func ValidateSchema(s schema.Schema) error {
	var issues []string
	seen := make(map[string]bool, len(s))

	for i, v := range s {
		name := v.Name
		if name == "" {
			issues = append(issues, fmt.Sprintf("entry %d has an empty name", i))
			name = fmt.Sprintf("#%d", i)
		}
		if seen[v.Name] {
			issues = append(issues, fmt.Sprintf("%s: declared more than once; the last declaration wins", name))
		}
		seen[v.Name] = true

		issues = append(issues, checkSpec(name, v.Spec)...)
	}

	if len(issues) > 0 {
		return fmt.Errorf("found %d issues:\n- %s", len(issues), strings.Join(issues, "\n- "))
	}
	return nil
}

func checkSpec(name string, spec schema.Spec) []string {
	switch sp := spec.(type) {
	case nil:
		return []string{fmt.Sprintf("%s: has no type", name)}
	case schema.Kind:
		return checkKind(name, sp)
	case schema.Enum:
		return checkEnum(name, sp)
	case schema.Descriptor:
		return checkDescriptor(name, sp)
	default:
		return nil
	}
}

func checkKind(name string, k schema.Kind) []string {
	if _, err := schema.ParseKind(string(k)); err != nil {
		return []string{fmt.Sprintf("%s: %v", name, err)}
	}
	return nil
}

func checkEnum(name string, e schema.Enum) []string {
	if len(e) == 0 {
		return []string{fmt.Sprintf("%s: enum has no allowed values and can never be satisfied", name)}
	}

	var issues []string
	seen := make(map[string]bool, len(e))
	for _, value := range e {
		if seen[value] {
			issues = append(issues, fmt.Sprintf("%s: enum value %q is listed more than once", name, value))
		}
		seen[value] = true
	}
	return issues
}

func checkDescriptor(name string, d schema.Descriptor) []string {
	issues := checkKind(name, d.Type)
	if len(issues) > 0 {
		return issues
	}

	if d.Default.Defined() && !d.Default.IsNull() && d.Default.Kind() != d.Type {
		issues = append(issues, fmt.Sprintf("%s: default %s is a %s but the variable is a %s", name, d.Default, d.Default.Kind(), d.Type))
	}
	if d.Default.IsNull() && !d.Nullable {
		issues = append(issues, fmt.Sprintf("%s: default is null but the variable is not nullable", name))
	}
	if d.Required && d.Default.Defined() {
		issues = append(issues, fmt.Sprintf("%s: required has no effect because a default is set", name))
	}
	return issues
}
