package instances

import (
	"context"
	"log/slog"
	"time"
)

// ReconcilerConfig holds configuration for the reconciler.
type ReconcilerConfig struct {
	Interval time.Duration
	// Dir is the runtime directory holding the sockets.
	Dir    string
	Probe  Prober
	Logger *slog.Logger
}

// Reconciler periodically removes sockets left behind by windows that died
// without cleaning up.
type Reconciler struct {
	interval time.Duration
	dir      string
	probe    Prober
	logger   *slog.Logger
}

// NewReconciler creates a new reconciler with the given configuration.
func NewReconciler(cfg ReconcilerConfig) *Reconciler {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	probe := cfg.Probe
	if probe == nil {
		probe = ProbeSocket
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Reconciler{
		interval: interval,
		dir:      cfg.Dir,
		probe:    probe,
		logger:   logger,
	}
}

// Run starts the reconciliation loop. Blocks until context is cancelled.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Debug("reconciler started", "interval", r.interval, "dir", r.dir)

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("reconciler stopped")
			return
		case <-ticker.C:
			r.reconcile()
		}
	}
}

// reconcile performs a single reconciliation pass.
func (r *Reconciler) reconcile() (removed []string) {
	defer func() {
		if err := recover(); err != nil {
			r.logger.Error("reconciler panic recovered", "error", err)
		}
	}()

	removed, err := Prune(r.dir, r.probe)
	for _, socket := range removed {
		r.logger.Info("reconciler: removed stale socket", "socket", socket)
	}
	if err != nil {
		r.logger.Warn("reconciler: failed to prune sockets", "error", err)
	}
	return removed
}

// ReconcileNow triggers an immediate reconciliation pass.
func (r *Reconciler) ReconcileNow() []string {
	return r.reconcile()
}
