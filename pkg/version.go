// Package gnkey ranks characters of plant identification keys by their
// power to discriminate among candidate species.
package gnkey

var (
	// Version of the application, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
