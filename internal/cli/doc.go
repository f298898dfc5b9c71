// Package cli parses command-line arguments into a validated generation
// profile and maps bad input to process exit codes. Flags are applied on
// top of an optional HCL profile, and positional sizes override the
// profile's topology block.
package cli
