// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

package vault

import (
	"encoding/json"
	"fmt"

	"github.com/mkarev/lockbox/models"
)

// A backup document is a JSON object mapping one vault identifier to its
// vault data, stored as plain JSON text (not base64) so backups remain
// human-readable and portable. Possession of the matching identifier is the
// only access check on import: a plain string comparison, not a
// cryptographic proof.

// Export serialises the currently unlocked vault as a backup document.
// Returns ErrNotUnlocked when no vault is open.
func (s *Service) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusUnlocked {
		return nil, ErrNotUnlocked
	}

	doc := map[string]models.VaultData{s.vaultID: s.data}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup document: %w", err)
	}
	return out, nil
}

// Import restores a vault from the backup document content. The document
// must contain an entry keyed by exactly idToVerify; that string comparison
// is the sole access check.
//
// On success the imported data is migrated to the current schema, persisted
// under idToVerify, made current, and the service moves to StatusUnlocked,
// replacing whatever vault was previously current, including an already
// unlocked one. A document without the expected key yields (false, nil)
// with no state change; malformed content yields an ErrParse-wrapped error,
// also with no state change.
func (s *Service) Import(content []byte, idToVerify string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc map[string]models.VaultData
	if err := json.Unmarshal(content, &doc); err != nil {
		return false, fmt.Errorf("%w: %v", ErrParse, err)
	}

	imported, ok := doc[idToVerify]
	if !ok {
		return false, nil
	}

	s.vaultID = idToVerify
	s.data = Normalize(imported)
	s.pendingID = ""
	s.persistLocked()
	s.store.SetCurrentVaultID(idToVerify)
	s.status = StatusUnlocked
	s.log.Info().Int("items", s.data.Total()).Msg("imported vault from backup")
	return true, nil
}

// BackupFileName returns the conventional backup file name for a vault.
func BackupFileName(id string) string {
	return "lockbox_backup_" + id + ".json"
}
