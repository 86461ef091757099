// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

package biometric

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mkarev/lockbox/internal/crypto"
	"github.com/mkarev/lockbox/internal/logger"
)

// ErrCancelled is returned when the user aborts a credential prompt.
var ErrCancelled = errors.New("credential prompt cancelled")

// PinPrompt asks the user for the device PIN. purpose distinguishes
// enrollment from assertion so the UI can word the prompt. Returning
// ErrCancelled (or any error) aborts the operation.
type PinPrompt func(ctx context.Context, purpose string) (string, error)

// LocalAuthenticator is a file-backed stand-in for a platform credential
// API: each enrolled credential is a random 32-byte identifier sealed with
// a key derived from a device PIN (Argon2id + AES-GCM) and stored in its
// own file. Possession of the file plus knowledge of the PIN together play
// the role of the platform's user-verification step; this is a local
// possession-and-knowledge proof, not real biometrics.
type LocalAuthenticator struct {
	dir      string
	keychain crypto.KeyChain
	prompt   PinPrompt
	log      *logger.Logger
}

// credentialFile is the on-disk layout of one enrolled credential. Salt is
// stored in the clear; Sealed is the AES-GCM blob holding the credential
// ID.
type credentialFile struct {
	RelyingParty string `json:"rp"`
	UserName     string `json:"user_name"`
	Salt         string `json:"salt"`
	Sealed       string `json:"sealed"`
}

// NewLocalAuthenticator stores credential files in dir, sealing them with
// keys derived by kc from PINs obtained through prompt.
func NewLocalAuthenticator(dir string, kc crypto.KeyChain, prompt PinPrompt, log *logger.Logger) *LocalAuthenticator {
	return &LocalAuthenticator{dir: dir, keychain: kc, prompt: prompt, log: log}
}

// Available implements [Authenticator].
func (a *LocalAuthenticator) Available() bool {
	return a.dir != "" && a.prompt != nil
}

// CreateCredential implements [Authenticator]. It asks for a PIN, seals a
// fresh random credential ID under it, and writes the credential file.
func (a *LocalAuthenticator) CreateCredential(ctx context.Context, opts CreateOptions) ([]byte, error) {
	if !a.Available() {
		return nil, errors.New("local authenticator not configured")
	}

	pin, err := a.prompt(ctx, "enroll")
	if err != nil {
		return nil, fmt.Errorf("pin prompt: %w", err)
	}

	credID := make([]byte, 32)
	if _, err = io.ReadFull(rand.Reader, credID); err != nil {
		return nil, fmt.Errorf("generate credential id: %w", err)
	}

	salt, err := a.keychain.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	sealed, err := a.keychain.Seal(credID, a.keychain.DeriveKey(pin, salt))
	if err != nil {
		return nil, fmt.Errorf("seal credential: %w", err)
	}

	if err = os.MkdirAll(a.dir, 0o700); err != nil {
		return nil, fmt.Errorf("create credential dir: %w", err)
	}

	payload, err := json.MarshalIndent(credentialFile{
		RelyingParty: opts.RelyingParty,
		UserName:     opts.UserName,
		Salt:         base64.StdEncoding.EncodeToString(salt),
		Sealed:       base64.StdEncoding.EncodeToString(sealed),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode credential file: %w", err)
	}

	path := filepath.Join(a.dir, "cred_"+uuid.NewString()+".json")
	if err = os.WriteFile(path, payload, 0o600); err != nil {
		return nil, fmt.Errorf("write credential file: %w", err)
	}

	return credID, nil
}

// GetAssertion implements [Authenticator]. It asks for the PIN once, then
// tries to open every stored credential file with it and returns the first
// recovered credential ID present in the allow-list. A wrong PIN opens
// nothing and the assertion fails.
func (a *LocalAuthenticator) GetAssertion(ctx context.Context, opts RequestOptions) ([]byte, error) {
	if !a.Available() {
		return nil, errors.New("local authenticator not configured")
	}

	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, fmt.Errorf("read credential dir: %w", err)
	}

	pin, err := a.prompt(ctx, "verify")
	if err != nil {
		return nil, fmt.Errorf("pin prompt: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "cred_") {
			continue
		}

		credID, err := a.open(filepath.Join(a.dir, entry.Name()), pin)
		if err != nil {
			// Wrong PIN and corrupt files look the same here; keep trying
			// the remaining credentials.
			a.log.Debug().Err(err).Str("file", entry.Name()).Msg("credential did not open")
			continue
		}

		for _, allowed := range opts.AllowCredentialIDs {
			if bytes.Equal(credID, allowed) {
				return credID, nil
			}
		}
	}

	return nil, errors.New("no allowed credential could be asserted")
}

func (a *LocalAuthenticator) open(path, pin string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credential file: %w", err)
	}

	var cf credentialFile
	if err = json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("decode credential file: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(cf.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	sealed, err := base64.StdEncoding.DecodeString(cf.Sealed)
	if err != nil {
		return nil, fmt.Errorf("decode sealed blob: %w", err)
	}

	credID, err := a.keychain.Open(sealed, a.keychain.DeriveKey(pin, salt))
	if err != nil {
		return nil, fmt.Errorf("open credential: %w", err)
	}
	return credID, nil
}
