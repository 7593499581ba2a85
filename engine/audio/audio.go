package audio

import (
	"math"
	"sync"
	"time"

	"github.com/1siamBot/geoscape/engine/resource"
	"github.com/1siamBot/geoscape/engine/rules"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

// DefaultSampleRate is the device rate used by Init
const DefaultSampleRate = beep.SampleRate(44100)

// SoundSource looks up sounds by set and index
type SoundSource interface {
	Sound(set string, i int) *resource.Sound
}

// Player plays sound cues and music through one mixer. Until Init is
// called it only counts requests, so headless runs need no audio device.
type Player struct {
	mu     sync.Mutex
	src    SoundSource
	log    zerolog.Logger
	mixer  *beep.Mixer
	rate   beep.SampleRate
	music  *beep.Ctrl
	volume float64

	MusicVolume  float64
	SFXVolume    float64
	MusicPlaying bool

	initialized bool
	requested   uint64
	played      uint64
}

// NewPlayer creates a player at master volume v (0-1)
func NewPlayer(src SoundSource, v float64, log zerolog.Logger) *Player {
	p := &Player{
		src:         src,
		log:         log.With().Str("component", "audio").Logger(),
		mixer:       &beep.Mixer{},
		rate:        DefaultSampleRate,
		MusicVolume: 0.5,
		SFXVolume:   0.8,
	}
	p.SetVolume(v)
	return p
}

// Init opens the audio device and starts the mixer
func (p *Player) Init(rate beep.SampleRate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	p.rate = rate
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Info().Int("rate", int(rate)).Msg("speaker started")
	return nil
}

// Close silences everything and releases the device
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
	p.MusicPlaying = false
}

// Play plays a cue. Unknown or silent sounds are ignored.
func (p *Player) Play(cue rules.SoundCue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.requested++
	snd := p.src.Sound(cue.Set, cue.Index)
	if snd.Silent() {
		return
	}
	p.played++
	if !p.initialized {
		return
	}
	s := p.prepare(snd, p.SFXVolume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayMusic replaces the current track. Silent tracks stop the music.
func (p *Player) PlayMusic(m *resource.Music, loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopMusicLocked()
	if m == nil || m.Silent() {
		return
	}
	p.MusicPlaying = true
	if !p.initialized {
		return
	}
	var s beep.Streamer = m.Streamer()
	if loop {
		s = beep.Loop(-1, m.Streamer())
	}
	ctrl := &beep.Ctrl{Streamer: p.shape(s, m.Format(), p.MusicVolume)}
	p.music = ctrl
	speaker.Lock()
	p.mixer.Add(ctrl)
	speaker.Unlock()
	p.log.Debug().Str("track", m.Name).Msg("music")
}

// StopMusic stops background music
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopMusicLocked()
}

func (p *Player) stopMusicLocked() {
	p.MusicPlaying = false
	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	p.music.Streamer = nil
	speaker.Unlock()
	p.music = nil
}

func (p *Player) prepare(snd *resource.Sound, channel float64) beep.Streamer {
	return p.shape(snd.Streamer(), snd.Format(), channel)
}

// shape resamples to the device rate and applies the channel volume
func (p *Player) shape(s beep.Streamer, f beep.Format, channel float64) beep.Streamer {
	if f.SampleRate != 0 && f.SampleRate != p.rate {
		s = beep.Resample(4, f.SampleRate, p.rate, s)
	}
	v := p.volume * channel
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(v, 1e-4)),
		Silent:   v <= 0,
	}
}

// SetVolume sets master volume (0-1)
func (p *Player) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.volume = v
}

func (p *Player) Volume() float64 { return p.volume }

// Stats returns how many cues were requested and how many had audio
func (p *Player) Stats() (requested, played uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requested, p.played
}
