package reconcile

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type metrics struct {
	sweeps   prometheus.Counter
	failures prometheus.Counter
	creates  prometheus.Counter
	updates  prometheus.Counter
	deletes  prometheus.Counter
}

// WithMetrics registers sweep counters on reg and returns the reconciler.
func (r *Reconciler) WithMetrics(reg prometheus.Registerer) *Reconciler {
	m := &metrics{
		sweeps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nms", Subsystem: "reconciler",
			Name: "sweeps_total", Help: "Completed reconciliation sweeps.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nms", Subsystem: "reconciler",
			Name: "sweep_failures_total", Help: "Sweeps that returned an error.",
		}),
		creates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nms", Subsystem: "reconciler",
			Name: "tenant_creates_total", Help: "Tenant records created.",
		}),
		updates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nms", Subsystem: "reconciler",
			Name: "tenant_updates_total", Help: "Tenant records updated.",
		}),
		deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nms", Subsystem: "reconciler",
			Name: "tenant_deletes_total", Help: "Tenant records deleted.",
		}),
	}
	reg.MustRegister(m.sweeps, m.failures, m.creates, m.updates, m.deletes)
	r.metrics = m
	return r
}

// Runner periodically sweeps the reconciler. The clock is injectable so
// tests can drive ticks.
type Runner struct {
	Reconciler *Reconciler
	Interval   time.Duration
	Clock      clock.Clock
	Logger     *zap.Logger
}

// Run sweeps once immediately and then on every tick until ctx is canceled.
// Sweep errors are logged and counted, never fatal; the next tick retries.
func (r *Runner) Run(ctx context.Context) {
	c := r.Clock
	if c == nil {
		c = clock.New()
	}
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	ticker := c.Ticker(r.Interval)
	defer ticker.Stop()

	for {
		r.sweep(ctx, log)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (r *Runner) sweep(ctx context.Context, log *zap.Logger) {
	if err := r.Reconciler.ReconcileAll(ctx); err != nil {
		if r.Reconciler.metrics != nil {
			r.Reconciler.metrics.failures.Inc()
		}
		log.Warn("reconciliation sweep failed", zap.Error(err))
	} else if r.Reconciler.metrics != nil {
		r.Reconciler.metrics.sweeps.Inc()
	}
}
