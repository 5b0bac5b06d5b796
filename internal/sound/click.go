package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)

	clickFreq     = 880.0
	clickDuration = 40 * time.Millisecond
	clickVolume   = 0.25
)

// Clicker plays a short synthesized tick through the speaker.
type Clicker struct {
	mu    sync.Mutex
	ready bool
	muted bool
}

// NewClicker initializes the speaker. On error the returned Clicker is
// usable but silent.
func NewClicker(muted bool) (*Clicker, error) {
	c := &Clicker{muted: muted}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return c, fmt.Errorf("init speaker: %w", err)
	}
	c.ready = true
	return c, nil
}

// Click queues one tick unless muted or the speaker is unavailable.
func (c *Clicker) Click() {
	if c == nil {
		return
	}
	c.mu.Lock()
	play := c.ready && !c.muted
	c.mu.Unlock()
	if play {
		speaker.Play(newTick(SampleRate, clickFreq, clickDuration))
	}
}

// ToggleMute flips the mute state and returns the new value.
func (c *Clicker) ToggleMute() bool {
	if c == nil {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.muted
	return c.muted
}

func (c *Clicker) Muted() bool {
	if c == nil {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted || !c.ready
}

// newTick returns a sine burst of length d with a linear decay envelope.
// The streamer is drained after sr.N(d) samples.
func newTick(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := clickVolume * env * math.Sin(step*float64(pos))
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}
