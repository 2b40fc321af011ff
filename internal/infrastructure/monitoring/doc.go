/*
Package monitoring provides metrics collection for the measure library.

# Overview

This package implements Prometheus counters for quantity operations. The
collectors are never registered globally; a program that wants them exposes
them through its own registry.

# Metrics

- <namespace>_operations_total{op}
- <namespace>_operation_failures_total{op, reason}

# Usage

	metrics := monitoring.NewMetrics("measure")
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return err
	}
	metrics.RecordFailure("add", "incompatible_unit")
*/
package monitoring
