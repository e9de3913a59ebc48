package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func epoch(v int64) *int64 { return &v }

func TestDurationSeconds(t *testing.T) {
	t.Run("normal span", func(t *testing.T) {
		assert.Equal(t, int64(3600), DurationSeconds(epoch(1000), epoch(4600)))
	})

	t.Run("missing heartbeats yield zero", func(t *testing.T) {
		assert.Zero(t, DurationSeconds(nil, nil))
		assert.Zero(t, DurationSeconds(epoch(1000), nil))
		assert.Zero(t, DurationSeconds(nil, epoch(1000)))
	})

	t.Run("out of order yields zero", func(t *testing.T) {
		assert.Zero(t, DurationSeconds(epoch(2000), epoch(1000)))
	})

	t.Run("equal heartbeats floor to 30s", func(t *testing.T) {
		assert.Equal(t, int64(30), DurationSeconds(epoch(1000), epoch(1000)))
	})
}

func TestCenticreditsForDuration(t *testing.T) {
	cases := []struct {
		seconds int64
		want    int64
	}{
		{0, 0},
		{-5, 0},
		{1, 1},        // any uptime rounds up
		{36, 1},       // exactly one centicredit
		{37, 2},
		{3600, 100},   // one hour, one credit
		{3601, 101},
		{7200, 200},
		{30, 1}, // the equal-heartbeat floor
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CenticreditsForDuration(tc.seconds), "seconds=%d", tc.seconds)
	}
}

func TestCreditsForCenticredits(t *testing.T) {
	assert.Equal(t, 1.0, CreditsForCenticredits(100))
	assert.Equal(t, 0.5, CreditsForCenticredits(50))
	assert.Equal(t, 0.0, CreditsForCenticredits(0))
}
