package validation

import (
	"net/url"
	"strings"
)

// ValidateSRFIKey rejects empty and oversized identifiers. Any other string
// may be a key of the info dataset.
func ValidateSRFIKey(key string) bool {
	return key != "" && len(key) <= 100
}

// ValidateSymbolName rejects empty and oversized symbol names.
func ValidateSymbolName(name string) bool {
	return name != "" && len(name) <= 200
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidateSourceLocation accepts an http(s) URL, a file:// URL or a plain path.
// Any other scheme is rejected.
func ValidateSourceLocation(loc string) (bool, string) {
	if strings.TrimSpace(loc) == "" {
		return false, "location is required"
	}

	u, err := url.Parse(loc)
	if err != nil || u.Scheme == "" {
		return true, ""
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return ValidateURL(loc)
	case "file":
		if u.Path == "" {
			return false, "file URL must have a path"
		}
		return true, ""
	}

	// Windows drive letters parse as one-letter schemes.
	if len(u.Scheme) == 1 {
		return true, ""
	}
	return false, "location must be an http(s) URL, a file:// URL or a path"
}
