package main

import (
	"context"
	"fmt"

	"github.com/mkarev/lockbox/internal/biometric"
	"github.com/mkarev/lockbox/internal/config"
	"github.com/mkarev/lockbox/internal/crypto"
	"github.com/mkarev/lockbox/internal/logger"
	"github.com/mkarev/lockbox/internal/store"
	"github.com/mkarev/lockbox/internal/suggest"
	"github.com/mkarev/lockbox/internal/tui"
	"github.com/mkarev/lockbox/internal/vault"
	"github.com/mkarev/lockbox/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetConfig()
	if err != nil {
		logger.NewLogger("lockbox").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewAppLogger("lockbox", cfg.App.LogPath)

	kv, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open local storage")
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Error().Err(err).Msg("close local storage")
		}
	}()

	vaultStore := store.NewVaultStore(kv, log)
	vaultService := vault.NewService(vaultStore, log)
	vaultService.Load()

	keychain := crypto.NewKeyChain()
	gateway := func(pin string) *biometric.Gateway {
		prompt := func(context.Context, string) (string, error) { return pin, nil }
		auth := biometric.NewLocalAuthenticator(cfg.Biometric.CredentialDir, keychain, prompt, log)
		return biometric.NewGateway(auth, vaultStore, log)
	}

	ai := suggest.NewClient(suggest.Config{
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
		APIKey:  cfg.AI.APIKey,
		Timeout: cfg.AI.RequestTimeout,
	})

	autoLock := workers.NewAutoLockJob(vaultService, cfg.Workers.AutoLockIdle, nil)
	jobs := workers.New(autoLock)
	jobs.Start(context.Background())
	defer jobs.Stop()

	err = tui.Run(tui.Deps{
		Vault:    vaultService,
		Gateway:  gateway,
		AI:       ai,
		AutoLock: autoLock,
		Log:      log,
		Version:  buildVersion,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("ui run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
