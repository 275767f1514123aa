package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Extension is the only audio format the loader recognizes.
const Extension = ".wav"

// Clip is a fully decoded WAV file.
type Clip struct {
	Label    string
	Path     string
	BitDepth int
	Buffer   *audio.IntBuffer
}

func (c *Clip) SampleRate() int { return c.Buffer.Format.SampleRate }
func (c *Clip) Channels() int   { return c.Buffer.Format.NumChannels }

// Frames is the number of samples per channel.
func (c *Clip) Frames() int {
	if c.Channels() == 0 {
		return 0
	}
	return len(c.Buffer.Data) / c.Channels()
}

func (c *Clip) Duration() time.Duration {
	if c.SampleRate() == 0 {
		return 0
	}
	return time.Duration(c.Frames()) * time.Second / time.Duration(c.SampleRate())
}

// IsWAV reports whether name carries the recognized extension.
func IsWAV(name string) bool {
	return strings.HasSuffix(name, Extension)
}

// Label strips the extension from a file name.
func Label(name string) string {
	return strings.TrimSuffix(filepath.Base(name), Extension)
}

// LoadClip decodes the WAV file at path.
func LoadClip(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrDecode, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return &Clip{
		Label:    Label(path),
		Path:     path,
		BitDepth: int(dec.BitDepth),
		Buffer:   buf,
	}, nil
}
