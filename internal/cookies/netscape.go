package cookies

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/wpget/wp-downloader/internal/model"
)

// Netscape cookies.txt format constants
const (
	netscapeFieldCount = 7

	// curl and some browser exporters prefix HttpOnly cookies with this
	// marker instead of a plain comment.
	httpOnlyPrefix = "#HttpOnly_"
)

// FileSource reads cookies from a Netscape-format cookies.txt export, the
// interchange format used by curl, wget and yt-dlp.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given cookies.txt path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// CookiesForDomain parses the file and returns the cookies in scope for
// domain. Malformed lines are skipped, not fatal.
func (fs *FileSource) CookiesForDomain(domain string) ([]model.Cookie, error) {
	f, err := os.Open(fs.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cookies file: %w", err)
	}
	defer f.Close()

	var cookies []model.Cookie
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		// HttpOnly cookies hide behind a comment-looking prefix
		line = strings.TrimPrefix(line, httpOnlyPrefix)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// domain, include-subdomains, path, secure, expiry, name, value
		fields := strings.Split(line, "\t")
		if len(fields) != netscapeFieldCount {
			continue
		}

		cookieDomain := fields[0]
		name := fields[5]
		value := fields[6]
		if name == "" || !matchesDomain(cookieDomain, domain) {
			continue
		}

		cookies = append(cookies, model.Cookie{
			Name:   name,
			Value:  value,
			Domain: cookieDomain,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cookies file: %w", err)
	}

	return cookies, nil
}
