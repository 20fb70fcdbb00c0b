// Package gamedata provides embedded session presets and utilities for
// loading them.
package gamedata

import "embed"

// dataFS embeds the JSON preset files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
