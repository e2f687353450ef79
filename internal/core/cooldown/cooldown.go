// Package cooldown decides whether a visitor may repeat a rate-limited action.
package cooldown

import (
	"math"
	"time"

	"blogapi.app/internal/ports"
)

// Decision is the outcome of Check.
type Decision = ports.CooldownDecision

// Check reports whether an action is allowed at now given the time of the
// previous one. A zero last means there was no previous action. A last action
// in the future counts as no elapsed time.
func Check(last time.Time, cooldown time.Duration, now time.Time) Decision {
	if last.IsZero() || cooldown <= 0 {
		return Decision{Allowed: true}
	}

	elapsed := now.UTC().Sub(last.UTC())
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= cooldown {
		return Decision{Allowed: true}
	}
	return Decision{Allowed: false, Remaining: cooldown - elapsed}
}

// Seconds rounds a remaining wait up to whole seconds for "try again in N seconds" messages.
func Seconds(remaining time.Duration) int {
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Seconds()))
}
