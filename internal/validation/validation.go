package validation

import "strings"

// TrustedURLPrefix is the only accepted source for submitted images
const TrustedURLPrefix = "https://pbs.twimg.com/media/"

// Catalog bounds for subject numbers
const (
	MinSubjectNumber = 1
	MaxSubjectNumber = 1025
)

// IsAcceptableSourceURL reports whether a URL points at the trusted media
// host. Checked before any download is attempted.
func IsAcceptableSourceURL(url string) bool {
	return strings.HasPrefix(url, TrustedURLPrefix)
}

// IsAcceptableSubjectNumber reports whether n is a valid catalog number
func IsAcceptableSubjectNumber(n int) bool {
	return n >= MinSubjectNumber && n <= MaxSubjectNumber
}
