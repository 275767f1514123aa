package playback

import (
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/go-audio/audio"

	"github.com/nguyentantai21042004/wavshift/internal/corpus"
)

func clipOf(bitDepth int, data []int) *corpus.Clip {
	return &corpus.Clip{
		Label:    "test",
		BitDepth: bitDepth,
		Buffer: &audio.IntBuffer{
			Format: &audio.Format{NumChannels: 1, SampleRate: 8000},
			Data:   data,
		},
	}
}

func samplesOf(b []byte) []int16 {
	out := make([]int16, len(b)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[i*2:]))
	}
	return out
}

func TestPCM16(t *testing.T) {
	tests := []struct {
		name     string
		bitDepth int
		in       []int
		want     []int16
	}{
		{"16-bit passthrough", 16, []int{0, 1000, -1000, 32767, -32768}, []int16{0, 1000, -1000, 32767, -32768}},
		{"24-bit downshift", 24, []int{256, -256, 8388607}, []int16{1, -1, 32767}},
		{"8-bit unsigned", 8, []int{128, 255, 0}, []int16{0, 32512, -32768}},
		{"out of range clamps", 16, []int{40000, -40000}, []int16{32767, -32768}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := samplesOf(PCM16(clipOf(tt.bitDepth, tt.in)))
			if len(got) != len(tt.want) {
				t.Fatalf("PCM16() produced %d samples, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPlayEmptyClip(t *testing.T) {
	p := New()

	if err := p.Play(context.Background(), nil); !errors.Is(err, ErrEmptyClip) {
		t.Errorf("Play(nil) error = %v, want ErrEmptyClip", err)
	}
	if err := p.Play(context.Background(), clipOf(16, nil)); !errors.Is(err, ErrEmptyClip) {
		t.Errorf("Play(empty) error = %v, want ErrEmptyClip", err)
	}
}
