package bazooka

// Sound identifies an audio cue. The sink decides what it sounds like.
type Sound int

const (
	SoundFire Sound = iota
	SoundHit
)

// String returns a human-readable name for the cue.
func (s Sound) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Sink is the presentation side of the game. Present is called once per
// frame with a snapshot taken after the simulation step; Play is called as
// cues happen during the frame.
type Sink interface {
	Present(Snapshot)
	Play(Sound)
}

// NopSink discards everything. Used when running headless.
type NopSink struct{}

func (NopSink) Present(Snapshot) {}
func (NopSink) Play(Sound)       {}

// MultiSink fans out to several sinks in order.
type MultiSink []Sink

// Present forwards the snapshot to every sink.
func (m MultiSink) Present(s Snapshot) {
	for _, sink := range m {
		sink.Present(s)
	}
}

// Play forwards the cue to every sink.
func (m MultiSink) Play(s Sound) {
	for _, sink := range m {
		sink.Play(s)
	}
}
