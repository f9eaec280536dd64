package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeBillID turns a display identifier like "SB 1" into the
// canonical lookup form "sb1".
func NormalizeBillID(id string) string {
	id = strings.ToLower(id)
	id = strings.Trim(id, " \n\t")
	return whitespaceRegex.ReplaceAllString(id, "")
}

func CollapseWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// SplitFieldsN splits on runs of whitespace like strings.Fields, but
// stops after n-1 splits so the final element keeps its internal
// spacing. Directory listing lines use this to keep filenames with
// spaces intact.
func SplitFieldsN(s string, n int) []string {
	var out []string
	rest := strings.TrimLeft(s, " \t")
	for len(out) < n-1 {
		idx := strings.IndexAny(rest, " \t")
		if idx < 0 {
			break
		}
		out = append(out, rest[:idx])
		rest = strings.TrimLeft(rest[idx:], " \t")
	}
	if rest != "" {
		out = append(out, rest)
	}
	return out
}
