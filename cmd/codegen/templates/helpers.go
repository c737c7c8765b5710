package templates

import (
	"fmt"
	"strings"
)

// prefixedStrings renders "T0, T1, ..." style lists for the template.
func prefixedStrings(prefix string, count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return strings.Join(parts, ", ")
}
