package pocketbase

import (
	"fmt"
	"strings"
)

var filterEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Escape makes s safe to embed inside a double-quoted filter literal
func Escape(s string) string {
	return filterEscaper.Replace(s)
}

// Eq builds a field="value" filter term
func Eq(field, value string) string {
	return fmt.Sprintf(`%s="%s"`, field, Escape(value))
}

// And joins filter terms with &&, skipping empty ones
func And(terms ...string) string {
	return join(" && ", terms)
}

// Or joins filter terms with ||, skipping empty ones
func Or(terms ...string) string {
	return join(" || ", terms)
}

func join(sep string, terms []string) string {
	kept := terms[:0:0]
	for _, t := range terms {
		if t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, sep)
}
