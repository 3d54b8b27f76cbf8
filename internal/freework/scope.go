package freework

import (
	"net/url"
	"strings"
)

// DomainSuffix is the hostname suffix of supported pages.
const DomainSuffix = "free-work.com"

// InScope parses raw and reports whether it points at a FreeWork page. Only
// absolute URLs qualify.
func InScope(raw string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	if !strings.HasSuffix(strings.ToLower(u.Hostname()), DomainSuffix) {
		return nil, false
	}
	return u, true
}
