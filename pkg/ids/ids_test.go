package ids

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pattern := regexp.MustCompile(`^bot_[A-Za-z0-9]{16}$`)

	t.Run("matches the contract pattern", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			id := New(PrefixBot)
			assert.Regexp(t, pattern, id)
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id := New(PrefixRecording)
			require.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("bot_aaaaaaaaaaaaaaaa"))
	assert.True(t, Valid("proj_0123456789ABCDEF"))
	assert.False(t, Valid("bot_short"))
	assert.False(t, Valid("bot_aaaaaaaaaaaaaaa!"))
	assert.False(t, Valid("noseparator"))
	assert.False(t, Valid(""))
}

func TestHasPrefix(t *testing.T) {
	id := New(PrefixProject)
	assert.True(t, HasPrefix(id, PrefixProject))
	assert.False(t, HasPrefix(id, PrefixBot))
}
