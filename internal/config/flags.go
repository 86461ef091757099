package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-c/-config json file path with configs
//	-storage-backend storage backend name (sqlite, badger, memory)
//	-storage-path sqlite database file or badger directory
//	-log-path log file path
//	-ai-base-url generative AI endpoint origin
//	-ai-model generative AI model name
//	-ai-api-key generative AI API key
//	-biometric-dir directory for sealed credential files
//	-auto-lock idle duration before the vault locks itself (e.g. "5m")
func ParseFlags() *StructuredConfig {
	var jsonConfigPath string
	var storageBackend string
	var storagePath string
	var logPath string
	var aiBaseURL string
	var aiModel string
	var aiAPIKey string
	var biometricDir string
	var autoLockIdle time.Duration

	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&storageBackend, "storage-backend", "", "Storage backend: sqlite, badger or memory")
	flag.StringVar(&storagePath, "storage-path", "", "Sqlite database file or badger directory")
	flag.StringVar(&logPath, "log-path", "", "Log file path")
	flag.StringVar(&aiBaseURL, "ai-base-url", "", "Generative AI endpoint origin")
	flag.StringVar(&aiModel, "ai-model", "", "Generative AI model name")
	flag.StringVar(&aiAPIKey, "ai-api-key", "", "Generative AI API key")
	flag.StringVar(&biometricDir, "biometric-dir", "", "Directory for sealed credential files")
	flag.DurationVar(&autoLockIdle, "auto-lock", 0, "Idle duration before the vault locks (e.g. 5m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogPath: logPath,
		},
		Storage: Storage{
			Backend: storageBackend,
			Path:    storagePath,
		},
		AI: AI{
			BaseURL: aiBaseURL,
			Model:   aiModel,
			APIKey:  aiAPIKey,
		},
		Biometric: Biometric{
			CredentialDir: biometricDir,
		},
		Workers: Workers{
			AutoLockIdle: autoLockIdle,
		},
		JSONFilePath: jsonConfigPath,
	}
}
