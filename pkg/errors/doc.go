// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidFormat,
//	    "invalid version for argument a",
//	    parseErr,
//	    map[string]any{
//	        "argument": "a",
//	        "value":    raw,
//	    },
//	)
package errors
