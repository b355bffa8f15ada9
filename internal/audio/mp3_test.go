package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveMP3(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.mp3")
	clip := sineClip(0.25, 22050)

	err := SaveMP3(clip, path)
	if errors.Is(err, ErrEncoderUnavailable) {
		t.Skipf("ffmpeg not installed: %v", err)
	}
	if err != nil {
		t.Fatalf("SaveMP3: %v", err)
	}

	loaded, err := LoadMP3(path)
	if err != nil {
		t.Fatalf("LoadMP3: %v", err)
	}

	// lossy round trip: only duration is comparable, and the codec pads edges
	want := clip.Duration().Seconds()
	got := loaded.Duration().Seconds()
	if math.Abs(want-got) > 0.15 {
		t.Errorf("duration drifted: wrote %.3fs, read %.3fs", want, got)
	}
}

func TestSaveMP3RejectsInvalidClip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mp3")
	clip := NewClip([]float32{float32(math.NaN())}, 22050)

	err := SaveMP3(clip, path)
	if !errors.Is(err, ErrInvalidAudio) {
		t.Fatalf("expected ErrInvalidAudio, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("invalid clip must not produce a file")
	}
}
