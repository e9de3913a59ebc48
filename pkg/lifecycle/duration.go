package lifecycle

// Billing conversion constants. One credit is 100 centicredits and buys one
// hour of bot uptime.
const (
	CenticreditsPerHour = 100
	SecondsPerHour      = 3600

	// MinBilledSeconds is charged when first and last heartbeat are equal:
	// a bot that heartbeated once ran for some nonzero time.
	MinBilledSeconds = 30
)

// DurationSeconds derives billable duration from heartbeat epochs.
// Zero if either timestamp is missing or the pair is out of order; floored
// to MinBilledSeconds when both are set and equal.
func DurationSeconds(firstHeartbeat, lastHeartbeat *int64) int64 {
	if firstHeartbeat == nil || lastHeartbeat == nil {
		return 0
	}
	if *lastHeartbeat < *firstHeartbeat {
		return 0
	}
	if *lastHeartbeat == *firstHeartbeat {
		return MinBilledSeconds
	}
	return *lastHeartbeat - *firstHeartbeat
}

// CenticreditsForDuration converts billable seconds to centicredits,
// rounding up: ceil(seconds / 3600 * 100).
func CenticreditsForDuration(seconds int64) int64 {
	if seconds <= 0 {
		return 0
	}
	return (seconds*CenticreditsPerHour + SecondsPerHour - 1) / SecondsPerHour
}

// CreditsForCenticredits renders centicredits as fractional credits for
// metadata and API payloads.
func CreditsForCenticredits(centicredits int64) float64 {
	return float64(centicredits) / CenticreditsPerHour
}
