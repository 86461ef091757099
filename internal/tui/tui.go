// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

// Package tui implements the terminal user interface. It is the only
// package that talks to the user; all state changes go through the vault
// service and the biometric gateway.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarev/lockbox/internal/biometric"
	"github.com/mkarev/lockbox/internal/logger"
	"github.com/mkarev/lockbox/internal/suggest"
	"github.com/mkarev/lockbox/internal/vault"
	"github.com/mkarev/lockbox/internal/workers"
)

// Deps are the collaborators the UI drives. Gateway is a factory taking
// the PIN collected by the UI, because the local authenticator needs the
// PIN at credential time while supported/enabled checks do not.
type Deps struct {
	Vault    *vault.Service
	Gateway  func(pin string) *biometric.Gateway
	AI       *suggest.Client
	AutoLock *workers.AutoLockJob
	Log      *logger.Logger
	Version  string
}

// Run starts the interactive program and blocks until the user quits.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps), tea.WithAltScreen())

	deps.AutoLock.SetNotify(func() {
		p.Send(vaultLockedMsg{})
	})

	_, err := p.Run()
	return err
}
