package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Username folds a username into its canonical stored form.
func Username(s string) string {
	return lower.String(strings.TrimSpace(s))
}
