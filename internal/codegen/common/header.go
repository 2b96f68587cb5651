package common

import (
	"fmt"
	"strings"
)

// HeaderInfo describes the provenance written at the top of every generated file.
type HeaderInfo struct {
	Version     string
	CreatorCode string
	License     string
}

// FileHeader renders the generated-code banner using the target language's
// line comment token, e.g. FileHeader("//", info).
// The first line follows the "Code generated ... DO NOT EDIT." convention so
// linters and reviewers skip generated sources.
func FileHeader(comment string, info HeaderInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Code generated by n2kgen %s. DO NOT EDIT.\n", comment, info.Version)
	if info.CreatorCode != "" {
		fmt.Fprintf(&b, "%s\n%s Registry: %s\n", comment, comment, OneLine(info.CreatorCode))
	}
	if info.License != "" {
		fmt.Fprintf(&b, "%s Registry license:\n", comment)
		for _, line := range strings.Split(strings.TrimSpace(info.License), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				fmt.Fprintf(&b, "%s\n", comment)
				continue
			}
			fmt.Fprintf(&b, "%s   %s\n", comment, line)
		}
	}
	return b.String()
}

// OneLine collapses all whitespace runs, newlines included, to single spaces.
func OneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
