package cookies

import (
	"strings"

	"github.com/wpget/wp-downloader/internal/model"
)

// Source yields browser cookies for a domain
type Source interface {
	// CookiesForDomain returns all cookies scoped to domain, including
	// cookies set on subdomains of it.
	CookiesForDomain(domain string) ([]model.Cookie, error)
}

// matchesDomain reports whether a cookie domain is in scope for the target
// domain. Leading dots on cookie domains (the domain-cookie form) are
// ignored, and subdomain cookies match their parent domain.
func matchesDomain(cookieDomain, target string) bool {
	d := strings.ToLower(strings.TrimPrefix(cookieDomain, "."))
	target = strings.ToLower(strings.TrimPrefix(target, "."))
	if d == "" || target == "" {
		return false
	}
	return d == target || strings.HasSuffix(d, "."+target)
}
