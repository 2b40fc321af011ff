// Package logging provides structured logging using uber/zap.
//
// The measure library is silent by default: rejected operations are only
// logged when logging is enabled through configuration or when a caller
// injects its own zap logger.
//
// Modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//   - Nop: everything discarded (library default)
//
// Example Usage:
//
//	logger, err := logging.FromConfig(config.LoadOrDefault().Logging)
//	logger.Warn("unit mismatch", zap.String("op", "add"), zap.Error(err))
package logging
