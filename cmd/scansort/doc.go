// Package main hosts the scansort CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the foreground daemon (`run`), one-shot
// batch processing (`process`), offline destination previews (`classify`),
// and configuration scaffolding (`config`). It centralizes configuration
// resolution so subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
