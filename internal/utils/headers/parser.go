// Package headers parses the repeated -H/--header CLI flag.
package headers

import (
	"strings"
)

// ParseHeaders converts "Name: Value" strings into a header map. Entries
// without a colon or with an empty name are skipped; when a name repeats,
// the last value wins.
func ParseHeaders(h []string) map[string]string {
	m := make(map[string]string, len(h))
	for _, hdr := range h {
		name, value, ok := strings.Cut(hdr, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		m[name] = strings.TrimSpace(value)
	}
	return m
}
