package normalize

import (
	"regexp"
	"strings"
)

// Remote policies.
const (
	PolicyHybrid     = "hybrid"
	PolicyFullRemote = "full-remote"
	PolicyRemote     = "remote"
)

// remotePatterns are tried in order for every text; the first hit wins.
var remotePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)full\s*remote`),
	regexp.MustCompile(`(?i)remote`),
	regexp.MustCompile(`(?i)télétravail`),
	regexp.MustCompile(`(?i)teletravail`),
	regexp.MustCompile(`(?i)hybride`),
	regexp.MustCompile(`(?i)home\s*office`),
}

// RemoteInfo is the outcome of remote detection.
type RemoteInfo struct {
	IsRemote bool
	Snippet  string
	Policy   string
}

// IsRemoteText reports whether text mentions remote or hybrid work.
func IsRemoteText(text string) bool {
	for _, pattern := range remotePatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// DetectRemote returns the first text that mentions remote work.
func DetectRemote(texts []string) RemoteInfo {
	for _, text := range texts {
		if text == "" {
			continue
		}
		if IsRemoteText(text) {
			return RemoteInfo{IsRemote: true, Snippet: text, Policy: RemotePolicy(text)}
		}
	}
	return RemoteInfo{}
}

// RemotePolicy maps a remote snippet to a policy. Hybrid wins over full remote,
// which wins over plain remote.
func RemotePolicy(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "hybride"):
		return PolicyHybrid
	case strings.Contains(lower, "full"):
		return PolicyFullRemote
	case strings.Contains(lower, "remote"),
		strings.Contains(lower, "télétravail"),
		strings.Contains(lower, "teletravail"):
		return PolicyRemote
	}
	return ""
}
