package sanitizer

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxFilenameLength is the common filesystem limit for a single name.
const maxFilenameLength = 255

// windowsReservedNames are device names Windows refuses as filenames. The
// check applies to the part before the first dot, case-insensitively, so
// "CON.tar.gz" is reserved too.
var windowsReservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// Filename sanitizes a filename with "_" as the replacement character.
func Filename(name string) (string, error) {
	return FilenameWith(name, "_")
}

// FilenameWith makes a filename safe for file system use:
//
//  1. Path components are stripped, so "../../etc/passwd" becomes "passwd".
//  2. The name is normalized to Unicode NFC.
//  3. Every character other than letters, digits, '_', '.' and '-' becomes
//     the replacement string.
//  4. Runs of the replacement collapse into one.
//  5. Replacement characters and dots are trimmed from both ends.
//  6. Names longer than 255 characters are truncated.
//  7. Windows reserved device names get a replacement prefix ("_" when the
//     replacement is empty, so "CON" can never survive unchanged).
//
// Returns ErrEmptyFilename when nothing survives sanitization.
func FilenameWith(name, replacement string) (string, error) {
	name = filepath.Base(name)
	name = norm.NFC.String(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteString(replacement)
		}
	}
	out := b.String()

	if replacement != "" {
		double := replacement + replacement
		for strings.Contains(out, double) {
			out = strings.ReplaceAll(out, double, replacement)
		}
	}

	out = strings.Trim(out, replacement+".")
	if out == "" {
		return "", ErrEmptyFilename
	}

	if runes := []rune(out); len(runes) > maxFilenameLength {
		out = string(runes[:maxFilenameLength])
	}

	root, _, _ := strings.Cut(out, ".")
	if _, reserved := windowsReservedNames[strings.ToUpper(root)]; reserved {
		prefix := replacement
		if prefix == "" {
			prefix = "_"
		}
		out = prefix + out
	}

	return out, nil
}
