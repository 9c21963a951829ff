// Package homepage holds the homepage-tab identity rules: URL
// canonicalization, the marker query parameter and the tracked-tab registry.
package homepage

import (
	"net"
	"net/url"
	"regexp"
	"strings"
)

// Marker is the reserved token identifying the homepage tab in its URL.
const Marker = "TakeMeHomeSameTab"

const markerParam = Marker + "=true"

// DefaultNewTabURLs are the native new-tab pages of Chromium browsers.
var DefaultNewTabURLs = []string{"chrome://newtab", "chrome://new-tab-page"}

var (
	localAddressPattern  = regexp.MustCompile(`(?i)(localhost|127\.0\.0\.1|::1|0\.0\.0\.0)`)
	schemePattern        = regexp.MustCompile(`^[a-zA-Z]+://`)
	validProtocolPattern = regexp.MustCompile(`(?i)^https?://`)
)

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// Normalize returns the comparison key scheme://host[:port]/path for a URL.
// A single trailing slash on a non-root path is dropped, default ports are
// elided and query/fragment are ignored. ok is false for malformed input.
// The key is for equality checks only, never for navigation.
func Normalize(raw string) (key string, ok bool) {
	if raw == "" {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", false
	}

	port := u.Port()
	if defaultPorts[scheme] == port {
		port = ""
	}

	authority := host
	switch {
	case port != "":
		authority = net.JoinHostPort(host, port)
	case strings.Contains(host, ":"):
		authority = "[" + host + "]"
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}

	return scheme + "://" + authority + path, true
}

// MarkHomepage appends the marker as a query parameter.
// It is not idempotent: marking twice yields two marker parameters.
func MarkHomepage(raw string) string {
	if raw == "" {
		return raw
	}

	sep := "?"
	if strings.Contains(raw, "?") {
		sep = "&"
	}
	return raw + sep + markerParam
}

// HasMarker reports whether the marker token appears anywhere in the URL.
// Any occurrence counts, including inside unrelated query values.
func HasMarker(raw string) bool {
	return raw != "" && strings.Contains(raw, Marker)
}

// FormatURL ensures a trailing slash.
func FormatURL(raw string) string {
	if raw == "" || strings.HasSuffix(raw, "/") {
		return raw
	}
	return raw + "/"
}

// IsLocalAddress reports whether the URL points at a loopback or unspecified address.
func IsLocalAddress(raw string) bool {
	return raw != "" && localAddressPattern.MatchString(raw)
}

// HasValidProtocol reports whether the URL starts with http:// or https://.
func HasValidProtocol(raw string) bool {
	return raw != "" && validProtocolPattern.MatchString(raw)
}

// EnsureScheme keeps URLs carrying a scheme, prefixes http:// for local
// addresses and https:// for everything else.
func EnsureScheme(raw string) string {
	if raw == "" || schemePattern.MatchString(raw) {
		return raw
	}
	if IsLocalAddress(raw) {
		return "http://" + raw
	}
	return "https://" + raw
}

// IsNewTabURL reports whether raw is one of the native new-tab pages.
// With no pages given, DefaultNewTabURLs are used.
func IsNewTabURL(raw string, pages ...string) bool {
	if raw == "" {
		return false
	}
	if len(pages) == 0 {
		pages = DefaultNewTabURLs
	}
	for _, p := range pages {
		if p != "" && strings.HasPrefix(raw, p) {
			return true
		}
	}
	return false
}
