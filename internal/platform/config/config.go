package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverMemory    = "memory"
	DriverFirestore = "firestore"
	DriverSQLite    = "sqlite"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port                  string
	GinMode               string
	StorageDriver         string
	SQLitePath            string
	SeedCatalog           bool
	DisplayLocale         string
	FirebaseProjectID     string
	FirebaseCredsBase64   string
	FirebaseCredsFile     string
	// FirestoreEmulatorHost disables credential checks when set.
	FirestoreEmulatorHost string
	AllowedOrigins        string
}

// Load reads environment variables into a Config with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:                  getEnv("PORT", "8080"),
		GinMode:               getEnv("GIN_MODE", "release"),
		StorageDriver:         strings.ToLower(getEnv("STORAGE_DRIVER", DriverMemory)),
		SQLitePath:            getEnv("SQLITE_PATH", "cardvault.db"),
		DisplayLocale:         getEnv("DISPLAY_LOCALE", "ru"),
		FirebaseProjectID:     strings.TrimSpace(os.Getenv("FIREBASE_PROJECT_ID")),
		FirebaseCredsBase64:   strings.TrimSpace(os.Getenv("FIREBASE_CREDS_BASE64")),
		FirebaseCredsFile:     strings.TrimSpace(os.Getenv("FIREBASE_CREDS_FILE")),
		FirestoreEmulatorHost: strings.TrimSpace(os.Getenv("FIRESTORE_EMULATOR_HOST")),
		AllowedOrigins:        strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")),
	}

	seed, err := parseBoolEnv("SEED_CATALOG", true)
	if err != nil {
		return Config{}, fmt.Errorf("parse SEED_CATALOG: %w", err)
	}
	cfg.SeedCatalog = seed

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures required fields are present for the selected driver.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	switch c.StorageDriver {
	case DriverMemory:
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite driver")
		}
	case DriverFirestore:
		if c.FirebaseProjectID == "" {
			return errors.New("FIREBASE_PROJECT_ID is required")
		}
		if c.FirestoreEmulatorHost == "" && c.FirebaseCredsBase64 == "" && c.FirebaseCredsFile == "" {
			return errors.New("provide FIREBASE_CREDS_BASE64 or FIREBASE_CREDS_FILE for Firestore auth")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (want memory, sqlite or firestore)", c.StorageDriver)
	}
	return nil
}

// FirebaseCredentialsJSON returns the service account JSON bytes and the source used.
func (c Config) FirebaseCredentialsJSON() ([]byte, string, error) {
	if c.FirebaseCredsBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(c.FirebaseCredsBase64)
		if err != nil {
			return nil, "base64", fmt.Errorf("decode FIREBASE_CREDS_BASE64: %w", err)
		}
		return decoded, "base64", nil
	}
	if c.FirebaseCredsFile != "" {
		data, err := os.ReadFile(c.FirebaseCredsFile)
		if err != nil {
			return nil, "file", fmt.Errorf("read FIREBASE_CREDS_FILE: %w", err)
		}
		return data, "file", nil
	}
	return nil, "", errors.New("no firebase credentials found")
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func parseBoolEnv(key string, defaultVal bool) (bool, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return false, err
	}
	return parsed, nil
}
