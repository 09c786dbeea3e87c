package service

import (
	"context"
	"sync"
	"time"
)

type clientRefreshJob struct {
	syncService ClientSyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls
// syncService.Refresh on a ticker. The job is idle until Start is called.
func NewClientRefreshJob(syncService ClientSyncService) ClientRefreshJob {
	return &clientRefreshJob{syncService: syncService}
}

// Start implements ClientRefreshJob. It stops any previously running job,
// then launches a background goroutine that calls Refresh every interval. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	// Остановка и замена под одним мьютексом: параллельные Start не могут
	// затереть cancel друг друга и оставить осиротевшую горутину.
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.syncService.Refresh(jobCtx)
			}
		}
	}()
}

// Stop implements ClientRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()
}

// stopLocked cancels the running goroutine and waits for it to exit.
// Caller must hold j.mu. The goroutine never takes the mutex, so waiting
// under it cannot deadlock.
func (j *clientRefreshJob) stopLocked() {
	if j.cancel == nil {
		return
	}
	j.cancel()
	j.cancel = nil
	j.wg.Wait()
}
