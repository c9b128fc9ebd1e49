// Package outbound resolves the external links stored on catalog records.
//
// Stored download and purchase URLs are free-form admin input. Anything that
// does not parse as an absolute http(s) URL is replaced with the configured
// WhatsApp contact link so a stale record never produces a broken redirect.
package outbound

import (
	"net/url"
	"strings"
)

func Resolve(raw, fallback string) string {
	if !Valid(raw) {
		return fallback
	}
	return raw
}

func Valid(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}
