// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

// Package biometric gates vault access behind a platform credential: a
// purely local possession proof mapping enrolled credential IDs to vault
// identifiers. It is not a cryptographic guarantee of vault
// confidentiality: the mapping and the vault records live in the same
// local store.
package biometric

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"

	"github.com/mkarev/lockbox/internal/logger"
	"github.com/mkarev/lockbox/internal/store"
)

// RelyingPartyName is presented by credential prompts.
const RelyingPartyName = "LockBox"

// Gateway registers platform credentials bound to vault identifiers and
// resolves assertions back to a vault identifier. Every failure mode
// (unsupported platform, user cancellation, unknown credential) surfaces as
// a boolean result; nothing escalates past this boundary.
type Gateway struct {
	auth  Authenticator
	store *store.VaultStore
	log   *logger.Logger
}

// NewGateway wires the gateway to its platform authenticator and the
// credential-map storage. auth may be nil, in which case Supported reports
// false and all operations fail cleanly.
func NewGateway(auth Authenticator, vs *store.VaultStore, log *logger.Logger) *Gateway {
	return &Gateway{auth: auth, store: vs, log: log}
}

// Supported reports whether a platform credential capability is present.
func (g *Gateway) Supported() bool {
	return g.auth != nil && g.auth.Available()
}

// Enabled reports whether at least one enrolled credential is bound to
// vaultID.
func (g *Gateway) Enabled(vaultID string) bool {
	if vaultID == "" {
		return false
	}
	for _, id := range g.store.CredentialMap() {
		if id == vaultID {
			return true
		}
	}
	return false
}

// Register enrolls a new platform credential bound to vaultID with a fresh
// random challenge and user handle, and records the credential-id to
// vaultID mapping. Multiple credentials may map to the same vault. Returns false on
// any failure or user cancellation.
func (g *Gateway) Register(ctx context.Context, vaultID string) bool {
	if vaultID == "" || !g.Supported() {
		return false
	}

	challenge, err := randomBytes(32)
	if err != nil {
		g.log.Error().Err(err).Msg("failed to generate registration challenge")
		return false
	}
	userHandle, err := randomBytes(32)
	if err != nil {
		g.log.Error().Err(err).Msg("failed to generate user handle")
		return false
	}

	credID, err := g.auth.CreateCredential(ctx, CreateOptions{
		Challenge:    challenge,
		RelyingParty: RelyingPartyName,
		UserHandle:   userHandle,
		UserName:     "user-" + vaultID,
	})
	if err != nil {
		g.log.Warn().Err(err).Msg("biometric registration failed")
		return false
	}

	creds := g.store.CredentialMap()
	creds[base64.StdEncoding.EncodeToString(credID)] = vaultID
	g.store.SaveCredentialMap(creds)
	return true
}

// Authenticate requests an assertion constrained to the known credential
// IDs and resolves the asserted credential back to its vault identifier.
// The caller is responsible for unlocking the vault with the returned
// identifier. When no credentials are enrolled it returns immediately
// without prompting. Returns ("", false) on failure, cancellation, or an
// unknown credential ID.
func (g *Gateway) Authenticate(ctx context.Context) (string, bool) {
	if !g.Supported() {
		return "", false
	}

	creds := g.store.CredentialMap()
	if len(creds) == 0 {
		return "", false
	}

	allowed := make([][]byte, 0, len(creds))
	for encoded := range creds {
		id, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			g.log.Warn().Str("credential", encoded).Msg("skipping undecodable credential id")
			continue
		}
		allowed = append(allowed, id)
	}
	if len(allowed) == 0 {
		return "", false
	}

	challenge, err := randomBytes(32)
	if err != nil {
		g.log.Error().Err(err).Msg("failed to generate assertion challenge")
		return "", false
	}

	credID, err := g.auth.GetAssertion(ctx, RequestOptions{
		Challenge:          challenge,
		AllowCredentialIDs: allowed,
	})
	if err != nil {
		g.log.Warn().Err(err).Msg("biometric authentication failed")
		return "", false
	}

	vaultID, ok := creds[base64.StdEncoding.EncodeToString(credID)]
	if !ok {
		g.log.Warn().Msg("assertion returned an unknown credential id")
		return "", false
	}
	return vaultID, true
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
