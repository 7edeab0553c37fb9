package listing

import (
	"strconv"
	"strings"
	"unicode"
)

// Slugify derives the URL-safe base slug from a job title: lowercase, with
// every run of non-alphanumeric characters collapsed to a single hyphen and
// no leading/trailing hyphen. "Senior  Engineer (Go)" -> "senior-engineer-go".
func Slugify(title string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	if b.Len() == 0 {
		return "job"
	}
	return b.String()
}

// slugCandidate returns the nth probe for a base slug: the base itself
// first, then base-2, base-3, ...
func slugCandidate(base string, attempt int) string {
	if attempt <= 1 {
		return base
	}
	return base + "-" + strconv.Itoa(attempt)
}
