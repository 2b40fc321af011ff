// Package config provides environment-driven configuration for the measure
// library.
//
// Configuration is loaded from environment variables. It only controls the
// ambient logging and metrics; values produced by the library never depend
// on it.
//
// Configuration Sections:
//   - Logging: whether rejected operations are logged, level and format
//   - Metrics: prometheus namespace of the operation counters
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Println(cfg.Logging.Level) // warn
//
// Environment Variables:
//   - MEASURE_LOG_ENABLED, MEASURE_LOG_LEVEL, MEASURE_LOG_DEV
//   - MEASURE_METRICS_NAMESPACE
package config
