// internal/auth/keyring.go
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService is the service name for keyring storage
	KeyringService = "screenshotgun-cli"
	// FallbackDir is the directory for file-based credential storage (when keyring fails)
	FallbackDir = ".screenshotgun"

	accessKeyName = "access_key"
	accessKeyFile = "access_key"
)

// ErrNotStored means no access key has been saved yet; callers fall back
// to the environment or the build-time default.
var ErrNotStored = errors.New("no access key stored")

// useFileBasedStorage checks if we should use file-based storage
// This is a fallback for environments where keyring isn't available (Codespaces, CI)
var fileBasedStorageCache *bool

func useFileBasedStorage() bool {
	// Cache the result to avoid repeated tests
	if fileBasedStorageCache != nil {
		return *fileBasedStorageCache
	}

	// Check environment hints
	if os.Getenv("CODESPACES") != "" || os.Getenv("CI") != "" {
		result := true
		fileBasedStorageCache = &result
		return true
	}

	// Try to use keyring, but if it fails, use file-based storage
	testKey := "_test_keyring_access_"
	err := keyring.Set(KeyringService, testKey, "test")
	result := (err != nil)
	fileBasedStorageCache = &result

	if !result {
		keyring.Delete(KeyringService, testKey)
	}

	return result
}

// getCredentialPath returns the fallback file path for the access key
func getCredentialPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, FallbackDir)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dir, accessKeyFile), nil
}

// SaveAccessKey stores the capture service credential in the OS keyring,
// or in a permission-restricted file where no keyring is available
func SaveAccessKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("access key cannot be empty")
	}

	if useFileBasedStorage() {
		path, err := getCredentialPath()
		if err != nil {
			return fmt.Errorf("failed to get credential path: %w", err)
		}
		if err := os.WriteFile(path, []byte(key), 0600); err != nil {
			return fmt.Errorf("failed to save credential file: %w", err)
		}
		return nil
	}

	if err := keyring.Set(KeyringService, accessKeyName, key); err != nil {
		return fmt.Errorf("failed to save to keyring: %w", err)
	}

	return nil
}

// LoadAccessKey retrieves the stored capture service credential.
// Returns ErrNotStored when nothing has been saved.
func LoadAccessKey() (string, error) {
	if useFileBasedStorage() {
		path, err := getCredentialPath()
		if err != nil {
			return "", fmt.Errorf("failed to get credential path: %w", err)
		}
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			return "", ErrNotStored
		}
		if err != nil {
			return "", fmt.Errorf("failed to load credential file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	key, err := keyring.Get(KeyringService, accessKeyName)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotStored
	}
	if err != nil {
		return "", fmt.Errorf("failed to load from keyring: %w", err)
	}

	return key, nil
}

// DeleteAccessKey removes the stored credential. Deleting when nothing
// is stored is not an error.
func DeleteAccessKey() error {
	if useFileBasedStorage() {
		path, err := getCredentialPath()
		if err != nil {
			return fmt.Errorf("failed to get credential path: %w", err)
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete credential file: %w", err)
		}
		return nil
	}

	err := keyring.Delete(KeyringService, accessKeyName)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete from keyring: %w", err)
	}

	return nil
}
