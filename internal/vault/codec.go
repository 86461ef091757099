// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

package vault

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/mkarev/lockbox/models"
)

// Encode serialises data to its at-rest representation: JSON text encoded
// as a single standard-base64 string. This is an encoding, not encryption;
// confidentiality rests entirely on knowledge of the vault identifier.
func Encode(data models.VaultData) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode vault data: %w", err)
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

// Decode parses the at-rest representation produced by Encode, applies the
// legacy-shape migration and defaults absent categories to empty
// collections. Any decoding failure is reported as ErrParse; Decode never
// panics on malformed input.
//
// Decode is the exact inverse of Encode for current-shape data: a
// round trip preserves every field at the JSON level.
func Decode(raw string) (models.VaultData, error) {
	payload, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return models.VaultData{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var data models.VaultData
	if err = json.Unmarshal(payload, &data); err != nil {
		return models.VaultData{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return Normalize(data), nil
}
