// Package config loads, validates, and defaults scansort configuration.
//
// Configuration lives in a single TOML file resolved from an explicit path,
// ~/.config/scansort/config.toml, or a project-local scansort.toml. Loading
// always returns a fully normalized config: paths are expanded to absolute
// form and every unset field carries its repository default, so downstream
// packages never re-check for missing values.
package config
