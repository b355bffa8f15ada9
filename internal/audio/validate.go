package audio

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAudio is returned when a clip or its sample rate is malformed
var ErrInvalidAudio = errors.New("invalid audio")

// Validate checks that a clip is well-formed: a non-nil single-channel
// buffer of finite samples at a positive sample rate. This is the one
// boundary where the invariant is enforced; downstream consumers rely on it
// instead of re-checking. Pure, no I/O.
func Validate(c *Clip) error {
	if c == nil || c.Samples == nil {
		return fmt.Errorf("%w: clip must not be nil", ErrInvalidAudio)
	}
	if c.Channels != 1 {
		return fmt.Errorf("%w: clip must be single-channel, got %d channels", ErrInvalidAudio, c.Channels)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be a positive integer, got %d", ErrInvalidAudio, c.SampleRate)
	}
	for i, s := range c.Samples {
		if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
			return fmt.Errorf("%w: non-finite sample at index %d", ErrInvalidAudio, i)
		}
	}
	return nil
}
