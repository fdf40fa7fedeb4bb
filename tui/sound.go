package tui

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeDuration = 250 * time.Millisecond
	chimeAttack   = 5 * time.Millisecond
)

// Chime plays a short tone whenever a batch of nuclei spawns. The first
// batch sounds at the base pitch; later batches step up a semitone each,
// wrapping after an octave.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	played      int
}

// NewChime creates a chime at the given linear volume in (0, 1].
func NewChime(volume float64) *Chime {
	return &Chime{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the audio device. Returns an error when no device is
// available; the chime then stays silent.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues one chime.
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	s, err := ChimeStreamer(ChimeFrequency(c.played), c.volume)
	c.played++
	if err != nil {
		return
	}

	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close silences pending chimes and releases the audio device.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// ChimeFrequency returns the pitch of the n-th chime.
func ChimeFrequency(n int) float64 {
	const base = 440.0
	return base * math.Pow(2, float64(n%12)/12)
}

// ChimeStreamer builds a finite chime: a fundamental plus a quieter octave,
// shaped by a linear attack and release.
func ChimeStreamer(freq, volume float64) (beep.Streamer, error) {
	fund, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	over, err := generators.SineTone(sampleRate, 2*freq)
	if err != nil {
		return nil, err
	}

	mixed := beep.Mix(
		withVolume(newEnvelope(fund, chimeDuration, chimeAttack), 0.7),
		withVolume(newEnvelope(over, chimeDuration/2, chimeAttack), 0.3),
	)
	return withVolume(mixed, volume), nil
}

// envelope fades a streamer in over attack and out over the rest of total,
// then ends it.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

func newEnvelope(s beep.Streamer, total, attack time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   sampleRate.N(attack),
		total:    sampleRate.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		var vol float64
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else {
			vol = float64(e.total-e.position) / float64(e.total-e.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a streamer by a linear factor. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
