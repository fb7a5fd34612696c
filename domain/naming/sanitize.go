package naming

import (
	"regexp"
	"strings"
)

var (
	invalidFilenameChars = regexp.MustCompile(`[^\w\s-]`)
	separatorRuns        = regexp.MustCompile(`[-\s]+`)
)

// SanitizeFilename makes a detected name safe for use as a filename: characters
// other than word characters, whitespace, and hyphens are stripped, and runs of
// whitespace or hyphens collapse into a single hyphen.
func SanitizeFilename(name string) string {
	safe := strings.TrimSpace(invalidFilenameChars.ReplaceAllString(name, ""))
	return separatorRuns.ReplaceAllString(safe, "-")
}
