// Package audio holds the in-memory clip type shared by every synthesis
// engine and the persistence, rendering and playback helpers that consume it.
package audio

import (
	"time"
)

// Clip is a single-channel buffer of float32 samples in [-1, 1] paired with
// the rate it was produced at. A clip is fully formed when an engine or a
// loader returns it; consumers never mutate it.
type Clip struct {
	Samples    []float32
	SampleRate int
	Channels   int
}

// NewClip wraps mono samples and their rate into a Clip
func NewClip(samples []float32, sampleRate int) *Clip {
	return &Clip{
		Samples:    samples,
		SampleRate: sampleRate,
		Channels:   1,
	}
}

// Duration returns the playback length of the clip
func (c *Clip) Duration() time.Duration {
	if c == nil || c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(c.Samples)) / float64(c.SampleRate) * float64(time.Second))
}
