// Package logging provides structured logging for Gray Logic Hub.
//
// This package wraps Go's standard log/slog package so every component
// (hub, sinks, infrastructure clients) logs with the same fields.
//
// # Features
//
//   - JSON output for machine consumption, text output for the console
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Configuration
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "text"     # json, text
//	  output: "stderr"   # stdout, stderr
//
// Logs default to stderr so they never interleave with the notification
// lines the console sink writes to stdout.
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("hub ready", "slots", 7)
package logging
