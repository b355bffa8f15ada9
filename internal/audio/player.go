package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gen2brain/malgo"
)

// ErrUnsupportedPlatform is returned when no usable audio backend exists on
// the current host, e.g. a headless container without ALSA or PulseAudio.
var ErrUnsupportedPlatform = errors.New("audio playback not supported on this platform")

// Play blocks while the clip plays on the default output device
func Play(c *Clip) error {
	if err := Validate(c); err != nil {
		return err
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedPlatform, err)
	}
	defer func() {
		_ = ctx.Uninit()
		ctx.Free()
	}()

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatF32
	deviceConfig.Playback.Channels = 1
	deviceConfig.SampleRate = uint32(c.SampleRate)
	deviceConfig.Alsa.NoMMap = 1

	var (
		pos  int
		once sync.Once
	)
	done := make(chan struct{})

	device, err := malgo.InitDevice(ctx.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: func(outputBuffer, inputBuffer []byte, frameCount uint32) {
			for i := uint32(0); i < frameCount; i++ {
				var sample float32
				if pos < len(c.Samples) {
					sample = c.Samples[pos]
					pos++
				}
				binary.LittleEndian.PutUint32(outputBuffer[i*4:], math.Float32bits(sample))
			}
			if pos >= len(c.Samples) {
				once.Do(func() { close(done) })
			}
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize playback device: %w", err)
	}
	defer device.Uninit()

	if err := device.Start(); err != nil {
		return fmt.Errorf("failed to start playback: %w", err)
	}

	<-done
	// let the backend drain its last buffer before tearing the device down
	time.Sleep(100 * time.Millisecond)

	return nil
}
