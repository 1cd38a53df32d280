package match

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Normalize canonicalizes a title for scoring: NFC, lowercase, punctuation
// folded away, whitespace collapsed. Scores are computed over normalized
// strings so that "Gladiator!" and "gladiator" compare as equal.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// Unicode NFC normalization
	s = norm.NFC.String(s)

	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = removePunctuation(s)
	s = collapseWhitespace(s)

	return s
}

// removePunctuation removes common punctuation characters
func removePunctuation(s string) string {
	replacer := strings.NewReplacer(
		".", "",
		",", "",
		"!", "",
		"?", "",
		"'", "",
		"\"", "",
		":", "",
		";", "",
		"-", " ",
		"_", " ",
		"&", "and",
		"/", "",
	)
	return replacer.Replace(s)
}

// collapseWhitespace replaces multiple spaces with a single space
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
