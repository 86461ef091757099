// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

package store

import (
	"encoding/json"
	"sync"

	"github.com/mkarev/lockbox/internal/logger"
)

// Storage keys shared with the original web application so that a dump of
// its localStorage imports cleanly: the current-vault pointer and the
// biometric credential map live under fixed keys, each vault record lives
// directly under its own identifier.
const (
	currentVaultKey  = "lockbox_vault_id"
	credentialMapKey = "lockbox_biometric_credentials"
)

// VaultStore exposes the three keyspaces the vault service needs over one
// flat Store: vault records, the current-vault pointer, and the biometric
// credential map.
//
// Writes are fail-silent: errors are logged and swallowed, the caller is
// not told. A lost write therefore loses data; this mirrors the storage
// contract of the original application and is flagged as a known gap.
// A mutex serialises all access so concurrent UI events cannot produce a
// torn read-modify-write of the credential map.
type VaultStore struct {
	mu    sync.Mutex
	store Store
	log   *logger.Logger
}

// NewVaultStore wraps s. log must be non-nil; use logger.Nop in tests.
func NewVaultStore(s Store, log *logger.Logger) *VaultStore {
	return &VaultStore{store: s, log: log}
}

// VaultRecord returns the raw encoded record of the vault id, or false when
// no such vault exists.
func (v *VaultStore) VaultRecord(id string) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.store.Get(id)
}

// SaveVaultRecord stores the raw encoded record under the vault id,
// overwriting any previous record.
func (v *VaultStore) SaveVaultRecord(id, raw string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.store.Set(id, raw); err != nil {
		v.log.Error().Err(err).Msg("failed to save vault record")
	}
}

// CurrentVaultID returns the persisted current-vault pointer, or false when
// no vault is current.
func (v *VaultStore) CurrentVaultID() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.store.Get(currentVaultKey)
}

// SetCurrentVaultID persists id as the current-vault pointer.
func (v *VaultStore) SetCurrentVaultID(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.store.Set(currentVaultKey, id); err != nil {
		v.log.Error().Err(err).Msg("failed to save current vault pointer")
	}
}

// ClearCurrentVaultID removes the current-vault pointer. The vault record
// itself is untouched.
func (v *VaultStore) ClearCurrentVaultID() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.store.Delete(currentVaultKey); err != nil {
		v.log.Error().Err(err).Msg("failed to clear current vault pointer")
	}
}

// CredentialMap returns the biometric credential map
// (encoded credential id -> vault id). A missing or corrupt entry yields an
// empty map; corruption is logged.
func (v *VaultStore) CredentialMap() map[string]string {
	v.mu.Lock()
	defer v.mu.Unlock()

	raw, ok := v.store.Get(credentialMapKey)
	if !ok {
		return map[string]string{}
	}

	creds := map[string]string{}
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		v.log.Error().Err(err).Msg("corrupt biometric credential map, starting empty")
		return map[string]string{}
	}
	return creds
}

// SaveCredentialMap persists the biometric credential map as JSON.
func (v *VaultStore) SaveCredentialMap(creds map[string]string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	raw, err := json.Marshal(creds)
	if err != nil {
		v.log.Error().Err(err).Msg("failed to encode biometric credential map")
		return
	}
	if err = v.store.Set(credentialMapKey, string(raw)); err != nil {
		v.log.Error().Err(err).Msg("failed to save biometric credential map")
	}
}
