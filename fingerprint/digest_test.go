package fingerprint_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcp-tool-shop-org/websketch-ir/fingerprint"
)

func TestShortHashGoldenValue(t *testing.T) {
	require.Equal(t, "0a9cede7", fingerprint.ShortHash("hello"))
}

var hex8 = regexp.MustCompile(`^[0-9a-f]{8}$`)

func TestShortHashFormat(t *testing.T) {
	for _, s := range []string{"", "hello", "a", "unicode: éè", "emoji: \U0001F600"} {
		require.True(t, hex8.MatchString(fingerprint.ShortHash(s)), "ShortHash(%q) = %q", s, fingerprint.ShortHash(s))
	}
}

func TestShortHashDeterministic(t *testing.T) {
	require.Equal(t, fingerprint.ShortHash("some text"), fingerprint.ShortHash("some text"))
}

func TestShortHashDistinguishesInputs(t *testing.T) {
	require.NotEqual(t, fingerprint.ShortHash("abc"), fingerprint.ShortHash("abd"))
}
