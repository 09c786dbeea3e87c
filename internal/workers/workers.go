package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-share/internal/config"
	"github.com/MKhiriev/go-contact-share/internal/service"
)

type Workers struct {
	workers []Worker
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// NewClientWorkers assembles the background workers of the client: currently
// only the periodic contact refresh.
func NewClientWorkers(ctx context.Context, services *service.ClientServices, cfg config.ClientWorkers) *Workers {
	return &Workers{workers: []Worker{
		newRefreshWorker(ctx, services.RefreshJob, cfg.RefreshInterval),
	}}
}

// refreshWorker starts the periodic refresh job. Run returns immediately; the
// job keeps ticking until ctx is cancelled.
type refreshWorker struct {
	ctx      context.Context
	job      service.ClientRefreshJob
	interval time.Duration
}

func newRefreshWorker(ctx context.Context, job service.ClientRefreshJob, interval time.Duration) *refreshWorker {
	return &refreshWorker{ctx: ctx, job: job, interval: interval}
}

func (w *refreshWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
