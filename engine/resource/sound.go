package resource

import (
	"fmt"
	"os"
	"sort"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Sound is a decoded clip held in memory. The zero Sound is silent.
type Sound struct {
	buf *beep.Buffer
}

// Silent reports whether playing the sound produces nothing
func (s *Sound) Silent() bool {
	return s == nil || s.buf == nil || s.buf.Len() == 0
}

// Streamer returns a fresh reader over the whole clip, or nil when silent
func (s *Sound) Streamer() beep.StreamSeeker {
	if s.Silent() {
		return nil
	}
	return s.buf.Streamer(0, s.buf.Len())
}

// Format returns the sample format of the clip
func (s *Sound) Format() beep.Format {
	if s == nil || s.buf == nil {
		return beep.Format{}
	}
	return s.buf.Format()
}

// Len returns the clip length in samples
func (s *Sound) Len() int {
	if s == nil || s.buf == nil {
		return 0
	}
	return s.buf.Len()
}

// Music is a named background track
type Music struct {
	Name string
	Sound
}

// SoundSet is an indexed collection of sounds
type SoundSet struct {
	sounds map[int]*Sound
}

func NewSoundSet() *SoundSet {
	return &SoundSet{sounds: make(map[int]*Sound)}
}

// Sound returns sound i or nil
func (s *SoundSet) Sound(i int) *Sound {
	if s == nil {
		return nil
	}
	return s.sounds[i]
}

func (s *SoundSet) SetSound(i int, snd *Sound) { s.sounds[i] = snd }

func (s *SoundSet) Len() int { return len(s.sounds) }

// Indices returns the sound indices in ascending order
func (s *SoundSet) Indices() []int {
	out := make([]int, 0, len(s.sounds))
	for i := range s.sounds {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// decodeWav reads a whole WAV file into memory
func decodeWav(path string) (*Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &Sound{buf: buf}, nil
}
