package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.35

	// drainTimeout caps how long Close waits for queued cues
	drainTimeout = 500 * time.Millisecond
)

// output is the slice of the speaker package the player touches
type output struct {
	lock, unlock, close func()
}

var speakerOutput = output{lock: speaker.Lock, unlock: speaker.Unlock, close: speaker.Close}

// Player plays short gameplay cues through the system speaker. A Player that
// failed to initialise, or was created muted, silently drops every cue.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	out          output
	pending      atomic.Int32
	drainTimeout time.Duration
}

func NewPlayer(muted bool) *Player {
	return &Player{
		mixer:        &beep.Mixer{},
		muted:        muted,
		out:          speakerOutput,
		drainTimeout: drainTimeout,
	}
}

// Init opens the speaker. Callers treat an error as "run without sound".
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close lets queued cues finish, up to drainTimeout, then shuts the speaker.
// The game-over cue is queued right before the loop exits, so closing
// without draining would cut it off.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.drain(p.drainTimeout)
	p.out.lock()
	p.mixer.Clear()
	p.out.unlock()
	p.out.close()
	p.initialized = false
}

// Pending is the number of cues queued but not yet fully played
func (p *Player) Pending() int {
	return int(p.pending.Load())
}

func (p *Player) drain(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for p.pending.Load() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
}

// PlayEat plays a short rising chirp
func (p *Player) PlayEat() {
	p.play(EatCue)
}

// PlayGameOver plays a falling two-note buzz
func (p *Player) PlayGameOver() {
	p.play(GameOverCue)
}

func (p *Player) play(cue func(beep.SampleRate) (beep.Streamer, error)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s, err := cue(sampleRate)
	if err != nil {
		return
	}
	p.pending.Add(1)
	tracked := beep.Seq(s, beep.Callback(func() { p.pending.Add(-1) }))

	// The speaker goroutine reads the mixer concurrently.
	p.out.lock()
	p.mixer.Add(tracked)
	p.out.unlock()
}

// EatCue is two quick sine notes, 660Hz then 990Hz
func EatCue(sr beep.SampleRate) (beep.Streamer, error) {
	return notes(sr, 60*time.Millisecond, 660, 990)
}

// GameOverCue is two slower sine notes, 330Hz then 165Hz
func GameOverCue(sr beep.SampleRate) (beep.Streamer, error) {
	return notes(sr, 180*time.Millisecond, 330, 165)
}

func notes(sr beep.SampleRate, each time.Duration, freqs ...float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		tone, err := generators.SineTone(sr, f)
		if err != nil {
			return nil, fmt.Errorf("sine %.0fHz: %w", f, err)
		}
		parts = append(parts, beep.Take(sr.N(each), tone))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(volume),
	}, nil
}
