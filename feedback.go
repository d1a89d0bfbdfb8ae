package panel

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// FeedbackKind names a UI cue.
type FeedbackKind uint8

const (
	FeedbackClick  FeedbackKind = iota // category toggle, button press
	FeedbackSelect                     // reorder row selected
	FeedbackDrop                       // reorder drop performed
)

// Feedback plays a UI cue. Widgets treat a nil Feedback as silent.
type Feedback interface {
	Play(kind FeedbackKind)
}

// FeedbackFunc adapts a function to Feedback.
type FeedbackFunc func(kind FeedbackKind)

// Play calls f(kind).
func (f FeedbackFunc) Play(kind FeedbackKind) { f(kind) }

func play(f Feedback, kind FeedbackKind) {
	if f != nil {
		f.Play(kind)
	}
}

// AudioFeedback plays decoded PCM clips through an ebiten audio context.
type AudioFeedback struct {
	players map[FeedbackKind]*audio.Player
	// Volume is applied to every clip, in [0, 1].
	Volume float64
}

// NewAudioFeedback creates players for each clip. Clips must be 16-bit
// little-endian stereo PCM at the context's sample rate.
func NewAudioFeedback(ctx *audio.Context, clips map[FeedbackKind][]byte) *AudioFeedback {
	a := &AudioFeedback{players: make(map[FeedbackKind]*audio.Player, len(clips)), Volume: 1}
	for kind, pcm := range clips {
		a.players[kind] = ctx.NewPlayerFromBytes(pcm)
	}
	return a
}

// Play restarts the clip for kind. Kinds without a clip are silent.
func (a *AudioFeedback) Play(kind FeedbackKind) {
	p, ok := a.players[kind]
	if !ok {
		return
	}
	p.SetVolume(a.Volume)
	if err := p.SetPosition(0); err != nil {
		debugf("feedback %d: rewind: %v", kind, err)
		return
	}
	p.Play()
}
