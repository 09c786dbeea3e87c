package models

// SyncPhase is the discriminator of the application sync state machine.
type SyncPhase string

const (
	PhaseLoading SyncPhase = "loading"
	PhaseLoaded  SyncPhase = "loaded"
	PhaseError   SyncPhase = "error"
)

// SyncState is the application state driving presentation.
//
// Invariant: Private and Shared are only ever replaced together, so a reader
// never observes a list pair from two different refreshes. The sync
// orchestrator is the single writer; everyone else reads copies.
type SyncState struct {
	// Phase is the current position in the loading/loaded/error machine.
	Phase SyncPhase

	// Private holds the contacts fetched from the private scope.
	// Populated only when Phase is PhaseLoaded.
	Private []Contact

	// Shared holds the contacts fetched from the shared scope.
	// Populated only when Phase is PhaseLoaded.
	Shared []Contact

	// Reason describes the failure when Phase is PhaseError.
	Reason string
}

// Clone returns a deep-enough copy of the state: the contact slices are
// duplicated so the caller can hold the result across later refreshes.
func (s SyncState) Clone() SyncState {
	out := s
	if s.Private != nil {
		out.Private = make([]Contact, len(s.Private))
		copy(out.Private, s.Private)
	}
	if s.Shared != nil {
		out.Shared = make([]Contact, len(s.Shared))
		copy(out.Shared, s.Shared)
	}
	return out
}
