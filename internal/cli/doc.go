// Package cli builds the crucible command tree. It turns flags and an optional
// YAML config file into runpath options, loads the grid, runs the search and
// prints the result. Process-level concerns such as exit codes are reported
// through ExitError.
package cli
