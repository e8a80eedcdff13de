package classify

import "errors"

// Sentinel errors describing why a filename could not be classified. Callers
// match them with errors.Is; the classifier wraps them with the offending
// filename.
var (
	ErrMissingExtension = errors.New("no valid file extension")
	ErrMissingParts     = errors.New("file name does not contain expected parts")
	ErrMissingSeparator = errors.New("file name does not contain expected separator")
	ErrInvalidDate      = errors.New("no valid date format")
)

// IsClassification reports whether err originated from filename
// classification rather than an I/O failure during relocation. A malformed
// filename is a permanent rejection; retrying without renaming the file
// cannot succeed.
func IsClassification(err error) bool {
	return errors.Is(err, ErrMissingExtension) ||
		errors.Is(err, ErrMissingParts) ||
		errors.Is(err, ErrMissingSeparator) ||
		errors.Is(err, ErrInvalidDate)
}
