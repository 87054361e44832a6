package config

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "STORAGE_DRIVER", "SQLITE_PATH", "SEED_CATALOG", "DISPLAY_LOCALE",
		"FIREBASE_PROJECT_ID", "FIREBASE_CREDS_BASE64", "FIREBASE_CREDS_FILE",
		"FIRESTORE_EMULATOR_HOST", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.GinMode != "release" {
		t.Errorf("port/mode = %s/%s, want 8080/release", cfg.Port, cfg.GinMode)
	}
	if cfg.StorageDriver != DriverMemory {
		t.Errorf("driver = %q, want memory", cfg.StorageDriver)
	}
	if !cfg.SeedCatalog {
		t.Errorf("seed catalog should default to true")
	}
	if cfg.DisplayLocale != "ru" {
		t.Errorf("locale = %q, want ru", cfg.DisplayLocale)
	}
}

func TestLoadDrivers(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name: "sqlite",
			env:  map[string]string{"STORAGE_DRIVER": "SQLite", "SQLITE_PATH": "/tmp/cards.db"},
		},
		{
			name:    "firestore without project",
			env:     map[string]string{"STORAGE_DRIVER": "firestore"},
			wantErr: "FIREBASE_PROJECT_ID",
		},
		{
			name:    "firestore without creds",
			env:     map[string]string{"STORAGE_DRIVER": "firestore", "FIREBASE_PROJECT_ID": "cardvault"},
			wantErr: "FIREBASE_CREDS",
		},
		{
			name: "firestore emulator",
			env: map[string]string{
				"STORAGE_DRIVER":          "firestore",
				"FIREBASE_PROJECT_ID":     "cardvault",
				"FIRESTORE_EMULATOR_HOST": "localhost:8081",
			},
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"STORAGE_DRIVER": "postgres"},
			wantErr: "unknown STORAGE_DRIVER",
		},
		{
			name:    "bad seed flag",
			env:     map[string]string{"SEED_CATALOG": "maybe"},
			wantErr: "SEED_CATALOG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Load: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestFirebaseCredentialsJSON(t *testing.T) {
	payload := []byte(`{"type":"service_account"}`)

	cfg := Config{FirebaseCredsBase64: base64.StdEncoding.EncodeToString(payload)}
	got, source, err := cfg.FirebaseCredentialsJSON()
	if err != nil || source != "base64" || string(got) != string(payload) {
		t.Errorf("base64 creds = %q, %q, %v", got, source, err)
	}

	path := filepath.Join(t.TempDir(), "creds.json")
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		t.Fatalf("write creds: %v", err)
	}
	cfg = Config{FirebaseCredsFile: path}
	got, source, err = cfg.FirebaseCredentialsJSON()
	if err != nil || source != "file" || string(got) != string(payload) {
		t.Errorf("file creds = %q, %q, %v", got, source, err)
	}

	if _, _, err := (Config{FirebaseCredsBase64: "%%%"}).FirebaseCredentialsJSON(); err == nil {
		t.Errorf("expected decode error for invalid base64")
	}
	if _, _, err := (Config{}).FirebaseCredentialsJSON(); err == nil {
		t.Errorf("expected error when no creds configured")
	}
}
