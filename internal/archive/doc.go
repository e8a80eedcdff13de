// Package archive relocates classified scan files from the inbox into the
// dated archive tree.
//
// One batch consumes a single directory listing snapshot: every entry is
// classified, copied to its destination with integrity verification, and
// removed from the inbox. Entries are processed independently, so one
// malformed filename never blocks its siblings; per-entry failures are
// collected and reported together.
package archive
