// Package report renders the fixed multi-line template shared by all
// version and provenance reports: a header line followed by detail lines
// indented with four spaces.
package report

import "strings"

const indent = "\n    "

// Block renders a report block. Empty lines are dropped so degraded
// reports stay compact.
func Block(header string, lines ...string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString(":")
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.WriteString(indent)
		b.WriteString(l)
	}
	return b.String()
}

// Clean strips line endings from single-value text (build stamps,
// version files) before it is embedded into a report line.
func Clean(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", ""))
}
