package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailDomain(t *testing.T) {
	domain, ok := emailDomain("client@example.com")
	require.True(t, ok)
	assert.Equal(t, "example.com", domain)

	// The split keys on the last @, so quoted local parts survive.
	domain, ok = emailDomain(`"a@b"@example.com`)
	require.True(t, ok)
	assert.Equal(t, "example.com", domain)
}

func TestIsEmailDomainValidRejectsMalformedAddresses(t *testing.T) {
	// Malformed addresses fail before any DNS lookup.
	for _, email := range []string{"", "no-at-sign", "trailing@"} {
		assert.False(t, IsEmailDomainValid(email), "email %q", email)
	}
}
