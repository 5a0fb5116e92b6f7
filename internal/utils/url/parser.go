package urlutil

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL performs comprehensive URL validation
func ValidateURL(urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: must be http or https, got %s", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("invalid URL: missing host")
	}

	return nil
}

// NormalizeTarget prepends https:// when the target has no scheme, so bare
// hostnames like "example.com" are accepted everywhere a URL is
func NormalizeTarget(target string) string {
	target = strings.TrimSpace(target)
	if target == "" {
		return target
	}
	lower := strings.ToLower(target)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return target
	}
	return "https://" + target
}

// RootDomain derives the short site name used in output filenames:
// the hostname with one leading "www." stripped, cut at the first dot.
// "https://www.example.com/page" becomes "example". Interior "www."
// occurrences are left alone.
func RootDomain(target string) string {
	parsed, err := url.Parse(NormalizeTarget(target))
	if err != nil {
		return "capture"
	}
	host := parsed.Hostname()
	if host == "" {
		return "capture"
	}
	host = strings.TrimPrefix(host, "www.")
	if i := strings.Index(host, "."); i > 0 {
		host = host[:i]
	}
	if host == "" {
		return "capture"
	}
	return host
}
