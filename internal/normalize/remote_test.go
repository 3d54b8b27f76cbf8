package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectRemote(t *testing.T) {
	info := DetectRemote([]string{"Paris", "Mission en full remote"})
	assert.True(t, info.IsRemote)
	assert.Equal(t, PolicyFullRemote, info.Policy)
	assert.Equal(t, "Mission en full remote", info.Snippet)

	assert.False(t, DetectRemote([]string{"Bureau à Paris"}).IsRemote)
	assert.False(t, DetectRemote(nil).IsRemote)
}

func TestDetectRemoteFirstTextWins(t *testing.T) {
	info := DetectRemote([]string{"", "Télétravail partiel", "Full remote"})
	assert.Equal(t, "Télétravail partiel", info.Snippet)
	assert.Equal(t, PolicyRemote, info.Policy)
}

func TestRemotePolicyPrecedence(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Hybride, full remote possible", PolicyHybrid},
		{"Full remote", PolicyFullRemote},
		{"Remote partiel", PolicyRemote},
		{"Teletravail 2j", PolicyRemote},
		{"Home office", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RemotePolicy(tc.text), tc.text)
	}
}
