// Package types holds the result values returned by pkg/commands and
// consumed by pkg/output. They carry json and yaml tags so the machine
// readable formats can encode them directly.
package types
