// Package cli implements the semvercmp command-line interface.
//
// # Commands
//
// compare - Compare two versions by precedence:
//
//	semvercmp compare [--format text|json|yaml|table] [--output FILE] [--expect RESULT] A B
//
// Prints -1, 0 or 1 in text format (the default). Structured formats print the
// full Comparison document with both decomposed versions. An invalid argument
// is reported with the argument name and reason and the command exits 1.
//
// validate - Validate versions:
//
//	semvercmp validate [--file PATH] [--fail-on-error] [VERSION...]
//
// Versions come from the arguments and from a YAML, JSON or TOML document
// with a "versions" list. Invalid versions are reported per entry; --fail-on-error
// turns any invalid entry into exit status 1.
//
// version - Print build information.
//
// # Global Flags
//
//	--log-level   Log level: debug, info, warn, error (env LOG_LEVEL)
//	--debug       Shorthand for --log-level=debug
//	--help, -h    Show command help
//	--version, -v Show version information
//
// The --format flag defaults to text and can be set with SEMVERCMP_FORMAT.
//
// # Exit Codes
//
//	0  success
//	1  invalid input, unexpected result or any other error
package cli
