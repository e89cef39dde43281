package extract

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Date formats seen across eCourts portals, tried in order.
var dateFormats = []string{
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2006-01-02",
	"02 January 2006",
	"02 Jan 2006",
}

// FormatDate re-renders a court date as YYYY-MM-DD. Input that matches none
// of the known formats is returned unchanged, so callers must treat the
// result as normalized-or-passthrough.
func FormatDate(text string) string {
	trimmed := strings.TrimSpace(text)
	for _, format := range dateFormats {
		if date, err := time.Parse(format, trimmed); err == nil {
			return date.Format("2006-01-02")
		}
	}
	return text
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	disallowed    = regexp.MustCompile(`[^a-zA-Z0-9\s.,;:()\-/]`)
)

// CleanText collapses whitespace runs, strips characters outside the
// alphanumeric-plus-basic-punctuation set, and trims. Idempotent.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	// Strip before collapsing: removing a character between spaces must not
	// leave a double space behind, or the function stops being idempotent.
	text = disallowed.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Separators between petitioner and respondent in case titles, in priority
// order.
var partySeparators = []string{"vs", "v/s", "versus", "v."}

// ParseCaseParties splits a case title like "John Doe vs Jane Smith" into
// petitioner and respondent. The first separator found wins and the text is
// split only once. With no separator the whole text is the petitioner and
// the respondent is empty.
func ParseCaseParties(text string) (string, string) {
	if text == "" {
		return "", ""
	}

	lower := strings.ToLower(text)
	for _, sep := range partySeparators {
		if idx := strings.Index(lower, sep); idx >= 0 {
			left := strings.TrimSpace(text[:idx])
			right := strings.TrimSpace(text[idx+len(sep):])
			return left, right
		}
	}

	return strings.TrimSpace(text), ""
}

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

const maxFilenameLen = 255

// SanitizeFilename strips path components and characters that are unsafe in
// filenames, capping the result at 255 characters while preserving the
// extension.
func SanitizeFilename(name string) string {
	// Take the final path segment regardless of separator style.
	name = filepath.Base(name)
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	}

	name = invalidFilenameChars.ReplaceAllString(name, "_")

	if len(name) > maxFilenameLen {
		ext := filepath.Ext(name)
		// An oversized extension (everything after the last dot) leaves no
		// room for a base; cut the name outright instead of slicing negative.
		if len(ext) >= maxFilenameLen {
			return name[:maxFilenameLen]
		}
		base := strings.TrimSuffix(name, ext)
		name = base[:maxFilenameLen-len(ext)] + ext
	}

	return name
}
