package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tiny-bazooka/internal/games/bazooka"
)

const sampleRate = beep.SampleRate(44100)

// waveType selects an oscillator shape.
type waveType int

const (
	waveSquare waveType = iota
	waveNoise
)

type oscillator struct {
	freq     float64
	sweep    float64 // Hz per second added to freq
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// newOscillator returns a finite streamer of the given wave.
func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return newSweep(freq, 0, duration, wave, rate)
}

func newSweep(freq, sweep float64, duration time.Duration, wave waveType, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		if freq < 0 {
			freq = 0
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// newEnvelope shapes s over duration with the given attack and release.
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. Log2(0) is -Inf, so 0 maps to silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

const (
	fireDuration = 140 * time.Millisecond
	hitDuration  = 260 * time.Millisecond
)

// fireSound is a short falling square chirp.
func fireSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := newSweep(520, -2400, fireDuration, waveSquare, rate)
	shaped := newEnvelope(osc, fireDuration, 5*time.Millisecond, 90*time.Millisecond, rate)
	return newVolume(shaped, vol*0.5)
}

// hitSound is a noise burst over a low thump.
func hitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := newOscillator(0, hitDuration, waveNoise, rate)
	burst := newEnvelope(noise, hitDuration, 2*time.Millisecond, 200*time.Millisecond, rate)

	var thump beep.Streamer = beep.Silence(rate.N(hitDuration))
	if sine, err := generators.SineTone(rate, 70); err == nil {
		thump = newEnvelope(beep.Take(rate.N(hitDuration), sine), hitDuration, 2*time.Millisecond, 180*time.Millisecond, rate)
	}

	mixed := beep.Mix(newVolume(burst, 0.6), newVolume(thump, 0.8))
	return newVolume(beep.Take(rate.N(hitDuration), mixed), vol)
}

// effect returns the streamer for a cue, or nil for an unknown one.
func effect(s bazooka.Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	switch s {
	case bazooka.SoundFire:
		return fireSound(rate, vol)
	case bazooka.SoundHit:
		return hitSound(rate, vol)
	default:
		return nil
	}
}

// bassline is an endless background loop: a kick on every beat over a
// walking bass.
type bassline struct {
	rate  beep.SampleRate
	pos   int
	beat  int
	notes []float64
}

func newBassline(rate beep.SampleRate) *bassline {
	return &bassline{
		rate:  rate,
		beat:  rate.N(400 * time.Millisecond), // 150 BPM
		notes: []float64{55, 55, 65.41, 73.42, 55, 55, 82.41, 73.42},
	}
}

func (b *bassline) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := b.rate.N(90 * time.Millisecond)
	for i := range samples {
		beatPos := b.pos % b.beat
		note := b.notes[(b.pos/b.beat)%len(b.notes)]
		t := float64(beatPos) / float64(b.rate)

		kick := 0.0
		if beatPos < kickLen {
			env := 1 - float64(beatPos)/float64(kickLen)
			kick = 0.35 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}
		bass := 0.12 * math.Sin(2*math.Pi*note*t)

		samples[i][0] = kick + bass
		samples[i][1] = kick + bass
		b.pos++
	}
	return len(samples), true
}

func (b *bassline) Err() error { return nil }
