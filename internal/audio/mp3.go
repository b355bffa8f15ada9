package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	mp3 "github.com/hajimehoshi/go-mp3"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ErrEncoderUnavailable is returned by SaveMP3 when no ffmpeg executable is
// found on the host. Callers should treat it as a skippable condition and
// fall back to WAV.
var ErrEncoderUnavailable = errors.New("MP3 export not available: ffmpeg is not installed")

func init() {
	ffmpeg.LogCompiledCommand = false
}

func checkFFmpegInstalled() error {
	cmd := exec.Command("ffmpeg", "-version")
	if err := cmd.Run(); err != nil {
		return ErrEncoderUnavailable
	}
	return nil
}

// SaveMP3 validates the clip and writes it to path as MP3. The clip goes
// through a temporary WAV file and an external ffmpeg process; when ffmpeg
// is missing the call fails with ErrEncoderUnavailable and writes nothing.
func SaveMP3(c *Clip, path string) error {
	if err := Validate(c); err != nil {
		return err
	}
	if err := checkFFmpegInstalled(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "ttsmini_*.wav")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	if err := SaveWav(c, tmpFile.Name()); err != nil {
		return err
	}

	err = ffmpeg.Input(tmpFile.Name()).
		Output(path, ffmpeg.KwArgs{
			"loglevel": "quiet",
			"acodec":   "libmp3lame",
			"b:a":      "192k",
			"ar":       strconv.Itoa(c.SampleRate),
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("failed to convert to MP3: %w", err)
	}

	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		return fmt.Errorf("failed to write MP3 file at %s", path)
	}
	return nil
}

// DecodeMP3 decodes an MP3 stream into a mono clip at the stream's native
// sample rate. The decoder emits 16-bit stereo frames; the pair is averaged.
func DecodeMP3(r io.Reader) (*Clip, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode MP3 data: %w", err)
	}

	pcmData, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("failed to read MP3 frames: %w", err)
	}

	// 16-bit, 2 channels, little-endian
	frames := len(pcmData) / 4
	samples := make([]float32, frames)
	for i := 0; i < frames; i++ {
		left := int16(binary.LittleEndian.Uint16(pcmData[i*4:]))
		right := int16(binary.LittleEndian.Uint16(pcmData[i*4+2:]))
		samples[i] = (float32(left) + float32(right)) / 2 / 32768
	}

	return NewClip(samples, decoder.SampleRate()), nil
}

// LoadMP3 reads an MP3 file into a mono clip
func LoadMP3(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open MP3 file: %w", err)
	}
	defer f.Close()

	clip, err := DecodeMP3(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return clip, nil
}
