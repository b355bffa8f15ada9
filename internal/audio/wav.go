package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EncodeWav renders a clip as an uncompressed 16-bit PCM RIFF container.
// Samples outside [-1, 1] are clamped.
func EncodeWav(c *Clip) []byte {
	pcmData := make([]byte, len(c.Samples)*2)
	for i, s := range c.Samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		binary.LittleEndian.PutUint16(pcmData[i*2:], uint16(int16(s*32767)))
	}

	channels := c.Channels
	sampleRate := c.SampleRate

	var buffer bytes.Buffer

	// Write WAV header
	binary.Write(&buffer, binary.LittleEndian, []byte("RIFF"))
	binary.Write(&buffer, binary.LittleEndian, uint32(len(pcmData)+36))
	binary.Write(&buffer, binary.LittleEndian, []byte("WAVE"))

	// "fmt " chunk
	binary.Write(&buffer, binary.LittleEndian, []byte("fmt "))
	binary.Write(&buffer, binary.LittleEndian, uint32(16))
	binary.Write(&buffer, binary.LittleEndian, uint16(1))
	binary.Write(&buffer, binary.LittleEndian, uint16(channels))
	binary.Write(&buffer, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buffer, binary.LittleEndian, uint32(sampleRate*channels*2))
	binary.Write(&buffer, binary.LittleEndian, uint16(channels*2))
	binary.Write(&buffer, binary.LittleEndian, uint16(16))

	// "data" chunk
	binary.Write(&buffer, binary.LittleEndian, []byte("data"))
	binary.Write(&buffer, binary.LittleEndian, uint32(len(pcmData)))
	binary.Write(&buffer, binary.LittleEndian, pcmData)

	return buffer.Bytes()
}

// SaveWav validates the clip and writes it to path as 16-bit PCM WAV.
// The sample rate is carried into the container header exactly as given.
func SaveWav(c *Clip, path string) error {
	if err := Validate(c); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, EncodeWav(c), 0o644); err != nil {
		return fmt.Errorf("failed to write WAV file: %w", err)
	}
	return nil
}

// DecodeWav parses a 16-bit PCM RIFF stream into a mono clip. Stereo data
// is downmixed by averaging the channel pair.
func DecodeWav(r io.Reader) (*Clip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV data: %w", err)
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("not a RIFF/WAVE stream")
	}

	var (
		fmtFound    bool
		audioFormat int
		channels    int
		sampleRate  int
		bits        int
		pcmData     []byte
	)

	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		offset += 8
		if chunkSize > len(data)-offset {
			chunkSize = len(data) - offset
		}
		body := data[offset : offset+chunkSize]

		switch chunkID {
		case "fmt ":
			if len(body) < 16 {
				return nil, fmt.Errorf("malformed fmt chunk (%d bytes)", len(body))
			}
			audioFormat = int(binary.LittleEndian.Uint16(body[0:2]))
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bits = int(binary.LittleEndian.Uint16(body[14:16]))
			fmtFound = true
		case "data":
			pcmData = body
		}

		offset += chunkSize
		if chunkSize%2 == 1 {
			// chunks are word-aligned
			offset++
		}
	}

	if !fmtFound || pcmData == nil {
		return nil, fmt.Errorf("missing fmt or data chunk")
	}
	if audioFormat != 1 || bits != 16 {
		return nil, fmt.Errorf("unsupported WAV encoding: format %d, %d bits (expected 16-bit PCM)", audioFormat, bits)
	}
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("unsupported channel count: %d", channels)
	}

	frameSize := 2 * channels
	frames := len(pcmData) / frameSize
	samples := make([]float32, frames)
	for i := 0; i < frames; i++ {
		if channels == 1 {
			samples[i] = float32(int16(binary.LittleEndian.Uint16(pcmData[i*2:]))) / 32768
		} else {
			left := int16(binary.LittleEndian.Uint16(pcmData[i*4:]))
			right := int16(binary.LittleEndian.Uint16(pcmData[i*4+2:]))
			samples[i] = (float32(left) + float32(right)) / 2 / 32768
		}
	}

	return NewClip(samples, sampleRate), nil
}

// LoadWav reads a WAV file into a mono clip
func LoadWav(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open WAV file: %w", err)
	}
	defer f.Close()

	clip, err := DecodeWav(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return clip, nil
}
