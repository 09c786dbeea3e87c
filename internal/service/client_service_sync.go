package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-contact-share/internal/adapter"
	"github.com/MKhiriev/go-contact-share/internal/logger"
	"github.com/MKhiriev/go-contact-share/internal/store"
	"github.com/MKhiriev/go-contact-share/models"
)

type syncService struct {
	recordStore adapter.RecordStore
	fetcher     *changeFetcher
	snapshots   store.SnapshotRepository
	logger      *logger.Logger

	mu        sync.RWMutex
	state     models.SyncState
	refreshed bool
}

func NewClientSyncService(recordStore adapter.RecordStore, snapshots store.SnapshotRepository, logger *logger.Logger) ClientSyncService {
	return &syncService{
		recordStore: recordStore,
		fetcher:     newChangeFetcher(recordStore),
		snapshots:   snapshots,
		logger:      logger,
		state:       models.SyncState{Phase: models.PhaseLoading},
	}
}

// Refresh implements ClientSyncService. The private scope always fetches the
// contact zone; the shared scope first lists its zones and fetches whatever
// is there, trivially yielding an empty list when nothing has been shared
// with this account. Both fetches run concurrently and the state transitions
// exactly once per call: to Loaded with both lists, or to Error with the
// first failure.
//
// Overlapping calls are not serialized. Each call still performs its own
// atomic transition, so readers always see a matched list pair; which pair
// survives is decided by whichever call writes last.
func (s *syncService) Refresh(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.setState(func(state *models.SyncState) {
		state.Phase = models.PhaseLoading
		state.Reason = ""
	})

	var (
		wg              sync.WaitGroup
		private, shared []models.Contact
		privateErr      error
		sharedErr       error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		private, privateErr = s.fetcher.fetchZones(ctx, models.ScopePrivate, []string{models.ContactZoneID})
	}()
	go func() {
		defer wg.Done()
		shared, sharedErr = s.fetchSharedScope(ctx)
	}()
	wg.Wait()

	if err := firstError(privateErr, sharedErr); err != nil {
		log.Err(err).
			Str("func", "syncService.Refresh").
			Msg("refresh failed")
		s.setState(func(state *models.SyncState) {
			state.Phase = models.PhaseError
			state.Reason = err.Error()
		})
		return err
	}

	s.setState(func(state *models.SyncState) {
		state.Phase = models.PhaseLoaded
		state.Private = private
		state.Shared = shared
		state.Reason = ""
	})
	s.mu.Lock()
	s.refreshed = true
	s.mu.Unlock()

	s.persistSnapshot(ctx, private, shared)

	log.Info().
		Str("func", "syncService.Refresh").
		Int("private", len(private)).
		Int("shared", len(shared)).
		Msg("refresh completed")
	return nil
}

// fetchSharedScope lists the zones visible in the shared scope and fetches
// all of them. No shared zones means an empty contact list, not an error.
func (s *syncService) fetchSharedScope(ctx context.Context) ([]models.Contact, error) {
	zoneIDs, err := s.recordStore.ListZones(ctx, models.ScopeShared)
	if err != nil {
		return nil, fmt.Errorf("list shared zones: %w", err)
	}
	return s.fetcher.fetchZones(ctx, models.ScopeShared, zoneIDs)
}

// State implements ClientSyncService.
func (s *syncService) State() models.SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// PreloadSnapshot implements ClientSyncService. Snapshot loading is best
// effort: a failed or empty read leaves the state in Loading and the first
// refresh fills it in.
func (s *syncService) PreloadSnapshot(ctx context.Context) {
	log := logger.FromContext(ctx)

	private, err := s.snapshots.GetSnapshot(ctx, models.ScopePrivate)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "syncService.PreloadSnapshot").
			Msg("failed to load private snapshot")
		return
	}
	shared, err := s.snapshots.GetSnapshot(ctx, models.ScopeShared)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "syncService.PreloadSnapshot").
			Msg("failed to load shared snapshot")
		return
	}
	if len(private) == 0 && len(shared) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refreshed {
		return
	}
	s.state = models.SyncState{
		Phase:   models.PhaseLoaded,
		Private: private,
		Shared:  shared,
	}
}

// setState applies one mutation to the state under the write lock. All
// transitions go through here so a reader never sees a half-applied pair.
func (s *syncService) setState(mutate func(*models.SyncState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.state)
}

// persistSnapshot caches the freshly loaded lists. Failures are logged and
// swallowed: the cache only shortens the next cold start.
func (s *syncService) persistSnapshot(ctx context.Context, private, shared []models.Contact) {
	log := logger.FromContext(ctx)

	if err := s.snapshots.SaveSnapshot(ctx, models.ScopePrivate, private); err != nil {
		log.Warn().Err(err).
			Str("func", "syncService.persistSnapshot").
			Msg("failed to persist private snapshot")
	}
	if err := s.snapshots.SaveSnapshot(ctx, models.ScopeShared, shared); err != nil {
		log.Warn().Err(err).
			Str("func", "syncService.persistSnapshot").
			Msg("failed to persist shared snapshot")
	}
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
