package audio

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/breakout/ecs"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a short run of sine tones played back to back.
type Cue struct {
	Freqs  []float64
	Length time.Duration
	Volume float64
}

var cues = map[ecs.EventType]Cue{
	ecs.EventBrickDestroyed:   {Freqs: []float64{660}, Length: 40 * time.Millisecond, Volume: 0.4},
	ecs.EventSolidBrickHit:    {Freqs: []float64{180}, Length: 60 * time.Millisecond, Volume: 0.5},
	ecs.EventPaddleHit:        {Freqs: []float64{440}, Length: 50 * time.Millisecond, Volume: 0.4},
	ecs.EventPowerUpSpawned:   {Freqs: []float64{880, 990}, Length: 30 * time.Millisecond, Volume: 0.25},
	ecs.EventPowerUpActivated: {Freqs: []float64{523, 659, 784}, Length: 60 * time.Millisecond, Volume: 0.4},
	ecs.EventPowerUpExpired:   {Freqs: []float64{784, 523}, Length: 60 * time.Millisecond, Volume: 0.3},
	ecs.EventBallLost:         {Freqs: []float64{330, 247, 196}, Length: 120 * time.Millisecond, Volume: 0.5},
	ecs.EventLevelWon:         {Freqs: []float64{523, 659, 784, 1047}, Length: 120 * time.Millisecond, Volume: 0.5},
}

// CueFor returns the cue played for an event type.
func CueFor(t ecs.EventType) (Cue, bool) {
	c, ok := cues[t]
	return c, ok
}

// Streamer builds the finite stream for the cue.
func (c Cue) Streamer(sr beep.SampleRate) (beep.Streamer, error) {
	if len(c.Freqs) == 0 || c.Length <= 0 {
		return nil, fmt.Errorf("audio: empty cue")
	}
	parts := make([]beep.Streamer, 0, len(c.Freqs))
	for _, f := range c.Freqs {
		tone, err := generators.SineTone(sr, f)
		if err != nil {
			return nil, fmt.Errorf("audio: tone %v: %w", f, err)
		}
		parts = append(parts, beep.Take(sr.N(c.Length), tone))
	}
	return volume(beep.Seq(parts...), c.Volume), nil
}

func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Player mixes event cues onto the speaker. Until Init succeeds, or while
// muted, Play does nothing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	log         *slog.Logger
	initialized bool
	muted       bool
}

func NewPlayer(log *slog.Logger) *Player {
	if log == nil {
		log = slog.Default()
	}
	return &Player{mixer: &beep.Mixer{}, log: log}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Play queues the cue of every event that has one.
func (p *Player) Play(events []ecs.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	for _, ev := range events {
		cue, ok := CueFor(ev.Type)
		if !ok {
			continue
		}
		s, err := cue.Streamer(sampleRate)
		if err != nil {
			p.log.Warn("audio cue failed", "event", ev.Type, "err", err)
			continue
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
}

// Close silences everything queued.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
