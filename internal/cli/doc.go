// Package cli turns mazesolve command-line arguments into a validated
// config.Config.
//
// An optional HCL file (the positional argument or -config) is loaded
// first; every flag that was set explicitly then overrides the file.
// Invalid input yields an *ExitError carrying exit code 2.
package cli
