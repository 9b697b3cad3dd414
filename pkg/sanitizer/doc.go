// Package sanitizer provides helpers for cleaning untrusted filenames before
// they touch the file system.
//
// Filename and FilenameWith strip path components, normalize Unicode to NFC,
// replace dangerous characters, and guard against Windows reserved device
// names, so a filename received from an upload or an external system can be
// used safely in file system operations:
//
//	import "github.com/adhisantoso/gunzkit/pkg/sanitizer"
//
//	name, err := sanitizer.Filename("../../etc/passwd")
//	// name == "passwd"
//
//	name, err = sanitizer.Filename("my report?.pdf")
//	// name == "my_report_.pdf"
//
// A name that sanitizes down to nothing (".", "..", "///") fails with
// ErrEmptyFilename rather than silently producing an unusable path.
//
// All functions are pure and safe for concurrent use.
package sanitizer
