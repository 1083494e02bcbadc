package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
)

// firefoxRootDir returns the per-OS directory that holds Firefox profiles
func firefoxRootDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return filepath.Join(homeDir, "Library", "Application Support", "Firefox", "Profiles"), nil
	case OSWindows:
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(homeDir, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Mozilla", "Firefox", "Profiles"), nil
	default:
		return filepath.Join(homeDir, ".mozilla", "firefox"), nil
	}
}

// DefaultFirefoxProfile finds the profile directory holding the user's
// cookie store. When several profiles have one, the most recently used wins.
func DefaultFirefoxProfile() (string, error) {
	root, err := firefoxRootDir()
	if err != nil {
		return "", err
	}
	return FindFirefoxProfile(root)
}

// FindFirefoxProfile scans root for profile directories containing a
// cookies.sqlite store and returns the one whose store changed most recently.
func FindFirefoxProfile(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("failed to read profiles directory %s: %w", root, err)
	}

	type candidate struct {
		dir     string
		modTime int64
	}
	var candidates []candidate

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		storePath := filepath.Join(root, entry.Name(), "cookies.sqlite")
		info, err := os.Stat(storePath)
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{
			dir:     filepath.Join(root, entry.Name()),
			modTime: info.ModTime().UnixNano(),
		})
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no Firefox profile with a cookie store under %s", root)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime > candidates[j].modTime
	})
	return candidates[0].dir, nil
}
