// Package classify turns scan filenames into archive destinations.
//
// A scan filename encodes its own filing instructions as
// `<category><separator><DDMMYYYY>.<extension>`. The classifier validates
// that shape and derives the dated archive path without touching the
// filesystem, so callers can preview destinations or relocate files with
// the same logic.
package classify
