// Package playback plays decoded clips on the default audio device.
package playback

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/nguyentantai21042004/wavshift/internal/corpus"
)

const pollInterval = 10 * time.Millisecond

// Player owns the process-wide oto context. oto allows one per process,
// so the first clip fixes the sample rate and channel count.
type Player struct {
	otoCtx     *oto.Context
	sampleRate int
	channels   int
}

func New() *Player {
	return &Player{}
}

// Play blocks until clip has finished playing or ctx is done.
func (p *Player) Play(ctx context.Context, clip *corpus.Clip) error {
	if clip == nil || clip.Buffer == nil || len(clip.Buffer.Data) == 0 {
		return ErrEmptyClip
	}
	if err := p.open(clip.SampleRate(), clip.Channels()); err != nil {
		return err
	}

	player := p.otoCtx.NewPlayer(bytes.NewReader(PCM16(clip)))
	defer player.Close()
	player.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return player.Err()
}

func (p *Player) open(sampleRate, channels int) error {
	if p.otoCtx != nil {
		if p.sampleRate != sampleRate || p.channels != channels {
			return fmt.Errorf("%w: %dHz/%dch, clip is %dHz/%dch",
				ErrFormatChanged, p.sampleRate, p.channels, sampleRate, channels)
		}
		return nil
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("create audio context: %w", err)
	}
	<-ready

	p.otoCtx = otoCtx
	p.sampleRate = sampleRate
	p.channels = channels
	return nil
}

// PCM16 converts the clip samples to signed 16-bit little-endian bytes.
func PCM16(clip *corpus.Clip) []byte {
	shift := clip.BitDepth - 16
	out := make([]byte, len(clip.Buffer.Data)*2)
	for i, s := range clip.Buffer.Data {
		var v int
		switch {
		case clip.BitDepth == 8:
			// 8-bit WAV is unsigned
			v = (s - 128) << 8
		case shift > 0:
			v = s >> shift
		case shift < 0:
			v = s << -shift
		default:
			v = s
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(clamp16(v))))
	}
	return out
}

func clamp16(v int) int {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return v
}
