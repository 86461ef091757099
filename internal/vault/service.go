// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

package vault

import (
	"sync"

	"github.com/google/uuid"

	"github.com/mkarev/lockbox/internal/logger"
	"github.com/mkarev/lockbox/internal/store"
	"github.com/mkarev/lockbox/models"
)

// Status is the lifecycle state of the vault service.
type Status int

const (
	// StatusLoading is the initial transient state before Load has read the
	// current-vault pointer from storage.
	StatusLoading Status = iota

	// StatusLocked means no vault is open. Unlock, Initialize and Import
	// are the ways out.
	StatusLocked

	// StatusAwaitingConfirmation means a fresh vault identifier has been
	// generated and shown to the user but nothing is persisted yet. Confirm
	// or Cancel resolve it.
	StatusAwaitingConfirmation

	// StatusUnlocked means a vault is open: VaultID and Data are valid and
	// UpdateData persists mutations.
	StatusUnlocked
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLocked:
		return "locked"
	case StatusAwaitingConfirmation:
		return "awaiting-confirmation"
	case StatusUnlocked:
		return "unlocked"
	}
	return "unknown"
}

// Service is the vault lifecycle state machine. It owns the in-memory
// identifier/data pair of the currently unlocked vault and is the only
// writer of vault records.
//
// The vault identifier doubles as storage key and access credential:
// whoever supplies it gains full access. Persistence is last-writer-wins
// with no read-modify-write transaction, matching the original
// application. A mutex keeps the internal state consistent when the UI,
// the biometric gateway and the auto-lock job call in from different
// goroutines, but it does not order overlapping unlock/import flows.
type Service struct {
	mu    sync.Mutex
	store *store.VaultStore
	log   *logger.Logger

	status    Status
	vaultID   string
	data      models.VaultData
	pendingID string
}

// NewService returns a Service in StatusLoading. Call Load to run the
// startup transition.
func NewService(vs *store.VaultStore, log *logger.Logger) *Service {
	return &Service{store: vs, log: log, status: StatusLoading}
}

// Load runs the startup transition: when a current-vault pointer exists and
// its record decodes, the vault is restored to StatusUnlocked; in every
// other case (no pointer, record missing, record corrupt) the service ends
// up in StatusLocked. A corrupt record is logged and left untouched.
func (s *Service) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.store.CurrentVaultID()
	if !ok {
		s.status = StatusLocked
		return
	}

	raw, ok := s.store.VaultRecord(id)
	if !ok {
		s.log.Warn().Msg("current vault pointer references a missing record")
		s.status = StatusLocked
		return
	}

	data, err := Decode(raw)
	if err != nil {
		s.log.Error().Err(err).Msg("stored vault record is corrupt")
		s.status = StatusLocked
		return
	}

	s.vaultID = id
	s.data = data
	s.status = StatusUnlocked
	s.log.Info().Int("items", data.Total()).Msg("restored unlocked vault")
}

// Initialize starts vault creation: it generates a fresh identifier, holds
// it as pending in memory only, and moves to StatusAwaitingConfirmation.
// Nothing is persisted until Confirm. Returns the generated identifier for
// display, or "" when called outside StatusLocked.
func (s *Service) Initialize() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusLocked {
		s.log.Warn().Str("status", s.status.String()).Msg("initialize called outside locked state")
		return ""
	}

	s.pendingID = uuid.NewString()
	s.status = StatusAwaitingConfirmation
	return s.pendingID
}

// Confirm completes vault creation: an empty vault is persisted under the
// pending identifier, the identifier becomes current, and the service moves
// to StatusUnlocked. Returns false when no creation is pending.
func (s *Service) Confirm() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingID == "" {
		return false
	}

	s.vaultID = s.pendingID
	s.data = models.NewVaultData()
	s.pendingID = ""
	s.persistLocked()
	s.store.SetCurrentVaultID(s.vaultID)
	s.status = StatusUnlocked
	s.log.Info().Msg("created new vault")
	return true
}

// Cancel aborts a pending vault creation. The pending identifier is
// discarded and storage is left exactly as it was before Initialize.
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingID = ""
	if s.status == StatusAwaitingConfirmation {
		s.status = StatusLocked
	}
}

// Unlock opens the vault stored under id. It succeeds iff a record exists
// under id and decodes; on success id becomes the persisted current vault.
// On failure nothing changes and the caller may re-prompt.
func (s *Service) Unlock(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.store.VaultRecord(id)
	if !ok {
		return false
	}

	data, err := Decode(raw)
	if err != nil {
		s.log.Error().Err(err).Msg("vault record failed to decode on unlock")
		return false
	}

	s.vaultID = id
	s.data = data
	s.store.SetCurrentVaultID(id)
	s.status = StatusUnlocked
	return true
}

// Lock closes the current vault: the current-vault pointer is removed from
// storage and the in-memory identifier and data are cleared. The vault
// record itself survives and can be unlocked again with the same
// identifier.
func (s *Service) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.ClearCurrentVaultID()
	s.vaultID = ""
	s.data = models.VaultData{}
	s.status = StatusLocked
}

// UpdateData replaces the whole in-memory vault data and persists it
// immediately under the current identifier. This is the single write path
// for day-to-day edits; it is unconditional, last writer wins. Calls while
// no vault is unlocked are ignored.
func (s *Service) UpdateData(newData models.VaultData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusUnlocked {
		s.log.Warn().Msg("update ignored, no vault unlocked")
		return
	}

	s.data = newData
	s.persistLocked()
}

// persistLocked encodes and writes the current data. Callers hold s.mu.
// Write failures are logged by the store layer and not surfaced.
func (s *Service) persistLocked() {
	raw, err := Encode(s.data)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode vault data")
		return
	}
	s.store.SaveVaultRecord(s.vaultID, raw)
}

// Status returns the current lifecycle state.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// VaultID returns the identifier of the unlocked vault, or "".
func (s *Service) VaultID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vaultID
}

// PendingID returns the identifier awaiting confirmation, or "".
func (s *Service) PendingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingID
}

// Data returns a copy of the unlocked vault's data. Mutate the copy and
// hand it back through UpdateData.
func (s *Service) Data() models.VaultData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}
