package classify

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"scansort/internal/config"
)

// DateLength is the exact number of digits in an encoded date (DDMMYYYY).
const DateLength = 8

// Target is the relocation output for one classified filename.
type Target struct {
	// SourceDir is the directory holding the original file.
	SourceDir string
	// Destination is the full archive path: target/year/month/day/category.ext.
	Destination string
}

// Classifier derives archive destinations from scan filenames according to
// the configured naming rules. It performs no I/O and is safe for concurrent
// use.
type Classifier struct {
	separator string
	maxDay    uint64
	maxMonth  uint64
	maxYear   uint64
}

// New builds a classifier from the configured naming rules.
func New(rules config.Rules) *Classifier {
	return &Classifier{
		separator: rules.Separator,
		maxDay:    uint64(rules.MaxDay),
		maxMonth:  uint64(rules.MaxMonth),
		maxYear:   uint64(rules.MaxYear),
	}
}

// Classify validates the filename at path and composes its destination under
// target. Validation short-circuits on the first failure: extension, stem,
// separator split, date format, date ranges.
func (c *Classifier) Classify(path, target string) (Target, error) {
	base := filepath.Base(path)

	dot := strings.LastIndex(base, ".")
	if dot <= 0 || dot == len(base)-1 {
		return Target{}, fmt.Errorf("%s: %w", base, ErrMissingExtension)
	}
	ext := base[dot+1:]
	stem := base[:dot]
	if stem == "" {
		// Unreachable while the extension check rejects leading dots; kept as
		// a guard against future extension rules.
		return Target{}, fmt.Errorf("%s: %w", base, ErrMissingParts)
	}

	segments := strings.Split(stem, c.separator)
	if len(segments) < 2 {
		return Target{}, fmt.Errorf("%s: %w (%q)", base, ErrMissingSeparator, c.separator)
	}
	// Only the first two segments matter; text after a further separator is
	// not examined.
	category, encoded := segments[0], segments[1]

	day, month, year, err := c.splitDate(encoded)
	if err != nil {
		return Target{}, fmt.Errorf("%s: %w", base, err)
	}

	return Target{
		SourceDir:   filepath.Dir(path),
		Destination: filepath.Join(target, year, month, day, category+"."+ext),
	}, nil
}

// splitDate slices an 8-digit DDMMYYYY string into its zero-padded fields and
// enforces the configured ceilings. Bounds are upper-only, so "00" fields
// pass.
func (c *Classifier) splitDate(encoded string) (day, month, year string, err error) {
	if !validFormat(encoded) {
		return "", "", "", fmt.Errorf("%w: %q", ErrInvalidDate, encoded)
	}
	day, month, year = encoded[0:2], encoded[2:4], encoded[4:8]
	if !inRange(day, c.maxDay) || !inRange(month, c.maxMonth) || !inRange(year, c.maxYear) {
		return "", "", "", fmt.Errorf("%w: %q", ErrInvalidDate, encoded)
	}
	return day, month, year, nil
}

func validFormat(encoded string) bool {
	if len(encoded) != DateLength {
		return false
	}
	for i := 0; i < len(encoded); i++ {
		if encoded[i] < '0' || encoded[i] > '9' {
			return false
		}
	}
	return true
}

func inRange(field string, max uint64) bool {
	value, err := strconv.ParseUint(field, 10, 16)
	if err != nil {
		return false
	}
	return value <= max
}
