package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// chime plays the landing tone. Audio failure is non-fatal, the sandbox
// runs silent when the speaker cannot initialize
type chime struct {
	enabled bool
	rate    beep.SampleRate
}

func newChime(mute bool, logger *zap.Logger) *chime {
	c := &chime{rate: beep.SampleRate(44100)}
	if mute {
		return c
	}

	if err := speaker.Init(c.rate, c.rate.N(time.Second/10)); err != nil {
		logger.Warn("Audio initialization failed", zap.Error(err))
		return c
	}
	c.enabled = true
	return c
}

func (c *chime) landing() {
	if !c.enabled {
		return
	}

	sine, err := generators.SineTone(c.rate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.rate.N(50*time.Millisecond), sine))
}

func (c *chime) close() {
	if c.enabled {
		speaker.Close()
	}
}
