package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestPlotWaveform(t *testing.T) {
	clip := sineClip(0.05, 22050)
	path := filepath.Join(t.TempDir(), "waveform.png")

	if err := PlotWaveform(clip, path); err != nil {
		t.Fatalf("PlotWaveform: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output image missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output image is empty")
	}
}

func TestPlotWaveformLongClipDownsampled(t *testing.T) {
	// 10s at 48kHz exercises the downsampling path
	clip := sineClip(10, 48000)
	path := filepath.Join(t.TempDir(), "long.png")

	if err := PlotWaveform(clip, path); err != nil {
		t.Fatalf("PlotWaveform: %v", err)
	}
}

func TestPlotWaveformRejectsInvalidClip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	clip := NewClip([]float32{float32(math.Inf(1))}, 22050)

	err := PlotWaveform(clip, path)
	if !errors.Is(err, ErrInvalidAudio) {
		t.Fatalf("expected ErrInvalidAudio, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("invalid clip must not produce an image")
	}
}
