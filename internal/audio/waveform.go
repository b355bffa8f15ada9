package audio

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// maxPlotPoints caps how many samples feed the renderer. Plotting every
// sample of a long clip produces multi-megabyte PNGs with no visible gain.
const maxPlotPoints = 8000

// PlotWaveform validates the clip and renders its time-domain waveform to a
// PNG file at path.
func PlotWaveform(c *Clip, path string) error {
	if err := Validate(c); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	step := 1
	if len(c.Samples) > maxPlotPoints {
		step = len(c.Samples) / maxPlotPoints
	}

	points := make(plotter.XYs, 0, len(c.Samples)/step+1)
	for i := 0; i < len(c.Samples); i += step {
		points = append(points, plotter.XY{
			X: float64(i) / float64(c.SampleRate),
			Y: float64(c.Samples[i]),
		})
	}

	p := plot.New()
	p.Title.Text = "Waveform"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Amplitude"

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("failed to build waveform trace: %w", err)
	}
	line.Color = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	line.Width = vg.Points(1)
	p.Add(line)

	if err := p.Save(10*vg.Inch, 3*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to write waveform image: %w", err)
	}

	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		return fmt.Errorf("failed to write waveform image at %s", path)
	}
	return nil
}
