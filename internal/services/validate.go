package services

import "strings"

// blank reports whether any value is empty after trimming whitespace.
func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// normalizeAnswer is the comparison form used for quiz answers.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
