// Package logging configures log/slog for the semvercmp binaries.
//
// The API server logs JSON to stderr, tagged with module and version:
//
//	logging.SetDefaultStructuredLogger("semvercmpd", version)
//	slog.Info("starting", "port", 8080)
//
// The level comes from LOG_LEVEL (debug, info, warn/warning, error; case
// insensitive). Unknown or empty values fall back to info. Use
// SetDefaultStructuredLoggerWithLevel to set it explicitly.
//
// The CLI logs text without timestamps:
//
//	logging.SetDefaultCLILogger(cmd.String("log-level"))
//
// At debug level both loggers add the source file and line.
//
// NewLogLogger adapts the default handler to a *log.Logger for APIs such as
// http.Server.ErrorLog.
package logging
