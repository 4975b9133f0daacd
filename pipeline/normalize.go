package pipeline

import (
	"regexp"
	"strings"
)

var (
	pageNumberLine  = regexp.MustCompile(`(?i)^\s*(?:page\s+)?\d+(?:\s+of\s+\d+)?\s*$`)
	boilerplateLine = regexp.MustCompile(`(?i)^\s*(?:confidential|draft|all rights reserved|attorney.client privileged?|privileged (?:and|&) confidential|do not (?:copy|distribute))[\s.]*$`)
)

// Normalize prepares raw extracted text for segmentation: page-number-only
// lines and header/footer boilerplate are stripped, then all whitespace runs
// collapse to single spaces. All chunk offsets are relative to this
// normalized form; the raw text is not retained.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if pageNumberLine.MatchString(line) || boilerplateLine.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(strings.Fields(strings.Join(kept, " ")), " ")
}
