package sound

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	feedToneHz   = 880
	feedDuration = 50 * time.Millisecond
)

// Chime plays a short tone through the speaker each time the snake eats.
type Chime struct {
	sampleRate beep.SampleRate
}

func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &Chime{sampleRate: sampleRate}, nil
}

// Tone builds the feeding tone without touching the speaker.
func (c *Chime) Tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(c.sampleRate, feedToneHz)
	if err != nil {
		return nil, fmt.Errorf("failed to build tone: %w", err)
	}
	return beep.Take(c.sampleRate.N(feedDuration), sine), nil
}

func (c *Chime) Play() {
	tone, err := c.Tone()
	if err != nil {
		log.Warn("Could not play chime", "error", err)
		return
	}
	speaker.Play(tone)
}

func (c *Chime) Close() {
	speaker.Close()
}
