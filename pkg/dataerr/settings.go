package dataerr

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/measure/internal/infrastructure/config"
	"github.com/GriffinCanCode/measure/internal/infrastructure/logging"
	"github.com/GriffinCanCode/measure/internal/infrastructure/monitoring"
)

// settings is replaced as a whole, never mutated after it is published.
type settings struct {
	log     *logging.Logger
	metrics *monitoring.Metrics
}

var (
	active   atomic.Pointer[settings]
	loadOnce sync.Once
	updateMu sync.Mutex
)

func current() *settings {
	loadOnce.Do(func() {
		active.CompareAndSwap(nil, fromConfig(config.LoadOrDefault()))
	})
	return active.Load()
}

func fromConfig(cfg *config.Config) *settings {
	log, err := logging.FromConfig(cfg.Logging)
	if err != nil {
		log = logging.NewNop()
	}
	return &settings{
		log:     log,
		metrics: monitoring.NewMetrics(cfg.Metrics.Namespace),
	}
}

func update(fn func(s *settings)) {
	updateMu.Lock()
	defer updateMu.Unlock()

	next := *current()
	fn(&next)
	active.Store(&next)
}

// SetLogger routes warnings about rejected operations to l. A nil logger
// silences them.
func SetLogger(l *zap.Logger) {
	update(func(s *settings) {
		s.log = logging.Wrap(l)
	})
}

// RegisterMetrics exposes the operation counters through reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	return current().metrics.Register(reg)
}

func (s *settings) record(op string) {
	s.metrics.RecordOperation(op)
}

func (s *settings) reject(err *OpError) {
	s.metrics.RecordFailure(err.Op, reason(err.Err))
	s.log.Warn("operation rejected",
		zap.String("op", err.Op),
		zap.String("left", err.Left),
		zap.String("right", err.Right),
		zap.Error(err.Err),
	)
}
