package cookies

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/wpget/wp-downloader/internal/model"
	"github.com/wpget/wp-downloader/internal/platform"
)

// Firefox store constants
const (
	CookieStoreFile = "cookies.sqlite"

	cookieQuery = `SELECT host, name, value FROM moz_cookies`
)

// FirefoxSource reads cookies straight from a Firefox profile's sqlite
// store. Firefox does not encrypt cookie values, so no OS keychain access is
// needed.
type FirefoxSource struct {
	profileDir string
}

// NewFirefoxSource creates a source for the given profile directory. An
// empty profileDir selects the default profile of the current user.
func NewFirefoxSource(profileDir string) *FirefoxSource {
	return &FirefoxSource{profileDir: profileDir}
}

// CookiesForDomain reads the profile's cookie store and returns the cookies
// in scope for domain.
func (fs *FirefoxSource) CookiesForDomain(domain string) ([]model.Cookie, error) {
	profileDir := fs.profileDir
	if profileDir == "" {
		var err error
		profileDir, err = platform.DefaultFirefoxProfile()
		if err != nil {
			return nil, fmt.Errorf("failed to locate Firefox profile: %w", err)
		}
	}

	storePath := filepath.Join(profileDir, CookieStoreFile)
	if _, err := os.Stat(storePath); err != nil {
		return nil, fmt.Errorf("no cookie store in profile %s: %w", profileDir, err)
	}

	// Firefox holds a lock on the store while running; read a snapshot copy
	// instead of the live file.
	snapshot, err := copyToTemp(storePath)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot cookie store: %w", err)
	}
	defer os.Remove(snapshot)

	db, err := sql.Open("sqlite", snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to open cookie store: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(cookieQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query cookie store: %w", err)
	}
	defer rows.Close()

	var cookies []model.Cookie
	for rows.Next() {
		var host, name, value string
		if err := rows.Scan(&host, &name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan cookie row: %w", err)
		}
		if matchesDomain(host, domain) {
			cookies = append(cookies, model.Cookie{
				Name:   name,
				Value:  value,
				Domain: host,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cookie rows: %w", err)
	}

	return cookies, nil
}

// copyToTemp copies src to a fresh temp file and returns its path
func copyToTemp(src string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.CreateTemp("", "cookies-*.sqlite")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", err
	}
	return out.Name(), nil
}
