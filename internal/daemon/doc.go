// Package daemon runs the scansort background loop.
//
// The Poller drives batches on a fixed cadence: list the inbox, hand the
// snapshot to the relocator, sleep, repeat. Read failures on the inbox skip
// the pass; batch failures are logged and never stop the loop. The Daemon
// wraps the poller with a file lock so only one scansort instance processes
// a given inbox.
package daemon
