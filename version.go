package sift

import _ "embed"

// Version is the release version, embedded from the VERSION file. It
// carries the file's trailing newline; trim before display.
//
//go:embed VERSION
var Version string
