package domain

import "github.com/jonboulle/clockwork"

// clock stamps published summaries. Tests freeze it via SetClock so published
// payloads are reproducible.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
