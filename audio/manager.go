package audio

import (
	"sync"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

// Effect names the SoundManager understands.
const (
	SoundCoin  = "coin"
	SoundJump  = "jump"
	SoundHit   = "hit"
	SoundStomp = "stomp"
	SoundStar  = "star"
)

// SoundManager owns the ebiten audio context and one player per effect.
// The context is created on first Play because ebiten allows only one per
// process and headless tests must never trigger it.
type SoundManager struct {
	mu      sync.Mutex
	once    sync.Once
	ctx     *eaudio.Context
	players map[string]*eaudio.Player
	muted   bool
}

func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{muted: muted}
}

func (m *SoundManager) SetMuted(muted bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.muted = muted
	m.mu.Unlock()
}

// Play rewinds and starts the named effect. Unknown names are ignored.
func (m *SoundManager) Play(name string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.muted {
		return
	}

	m.once.Do(m.build)

	p, ok := m.players[name]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

func (m *SoundManager) build() {
	m.ctx = eaudio.NewContext(SampleRate)
	m.players = make(map[string]*eaudio.Player)

	effects := map[string][]byte{
		SoundCoin:  Tone(SampleRate, 880, 0.1),
		SoundJump:  Tone(SampleRate, 700, 0.09),
		SoundHit:   Tone(SampleRate, 180, 0.18),
		SoundStomp: Bark(SampleRate),
		SoundStar:  Sweep(SampleRate, 440, 1320, 0.35),
	}
	for name, pcm := range effects {
		p := m.ctx.NewPlayerFromBytes(pcm)
		p.SetVolume(0.5)
		m.players[name] = p
	}
}
