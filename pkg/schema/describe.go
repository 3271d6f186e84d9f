package schema

import (
	"fmt"
	"strings"
)

// Describe renders the schema as a Markdown reference table.
func (s Schema) Describe() string {
	var b strings.Builder
	b.WriteString("| Variable | Type | Required | Default | Description |\n")
	b.WriteString("|----------|------|----------|---------|-------------|\n")

	for _, e := range s.entries() {
		typ, required, def, desc := describeSpec(e.spec)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			codeCell(e.name), typ, required, def, escapeCell(desc))
	}
	return b.String()
}

func describeSpec(spec Spec) (typ, required, def, desc string) {
	switch s := spec.(type) {
	case Enum:
		return "enum: " + escapeCell(strings.Join(s, ", ")), "yes", "", ""
	case Kind:
		return string(s), "yes", "", ""
	case Descriptor:
		typ = string(s.Type)
		if s.Nullable {
			typ += " (nullable)"
		}
		required = "no"
		if s.Required {
			required = "yes"
		}
		if s.Default.Defined() {
			def = codeCell(s.Default.String())
			if s.Secret {
				def = MaskedValue
			}
		}
		return typ, required, def, s.Description
	default:
		return "?", "yes", "", ""
	}
}

// codeCell renders s as an inline code span inside a table cell. The fence
// is one backtick longer than the longest backtick run in s.
func codeCell(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}

	fence := strings.Repeat("`", longest+1)
	body := escapeCell(s)
	if longest > 0 || strings.HasPrefix(body, " ") || strings.HasSuffix(body, " ") {
		body = " " + body + " "
	}
	return fence + body + fence
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
