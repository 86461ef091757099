package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type for the file-based source.
type StructuredJSONConfig struct {
	App struct {
		LogPath string `json:"log_path"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		Path    string `json:"path"`
	} `json:"storage,omitempty"`

	AI struct {
		BaseURL        string   `json:"base_url"`
		Model          string   `json:"model"`
		APIKey         string   `json:"api_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"ai,omitempty"`

	Biometric struct {
		CredentialDir string `json:"credential_dir"`
	} `json:"biometric,omitempty"`

	Workers struct {
		AutoLockIdle Duration `json:"auto_lock_idle"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogPath: jsonCfg.App.LogPath,
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Path:    jsonCfg.Storage.Path,
		},
		AI: AI{
			BaseURL:        jsonCfg.AI.BaseURL,
			Model:          jsonCfg.AI.Model,
			APIKey:         jsonCfg.AI.APIKey,
			RequestTimeout: time.Duration(jsonCfg.AI.RequestTimeout),
		},
		Biometric: Biometric{
			CredentialDir: jsonCfg.Biometric.CredentialDir,
		},
		Workers: Workers{
			AutoLockIdle: time.Duration(jsonCfg.Workers.AutoLockIdle),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s" in addition to plain
// nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
