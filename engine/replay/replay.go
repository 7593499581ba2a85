// Package replay records the commands given to dogfight windows so a
// seeded run can be played back tick for tick.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// Recorder appends entries to a replay stream
type Recorder struct {
	Entries []Entry
	file    *os.File
	writer  *bufio.Writer
	seed    int64
}

// NewRecorder starts a replay stream on w for a run seeded with seed.
func NewRecorder(w io.Writer, seed int64) (*Recorder, error) {
	r := &Recorder{writer: bufio.NewWriter(w), seed: seed}
	if _, err := r.writer.Write(magic[:]); err != nil {
		return nil, err
	}
	if err := writeSeed(r.writer, seed); err != nil {
		return nil, err
	}
	return r, nil
}

// Create opens a replay file for recording
func Create(path string, seed int64) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	r, err := NewRecorder(f, seed)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f
	return r, nil
}

// Record writes an entry to the stream
func (r *Recorder) Record(e Entry) error {
	r.Entries = append(r.Entries, e)
	return e.Encode(r.writer)
}

func (r *Recorder) Seed() int64 { return r.seed }

// Close flushes the stream and closes the file, if any
func (r *Recorder) Close() error {
	if err := r.writer.Flush(); err != nil {
		if r.file != nil {
			r.file.Close()
		}
		return err
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Replay is a loaded recording
type Replay struct {
	Seed    int64
	Entries []Entry
}

// Load reads a replay stream
func Load(rd io.Reader) (*Replay, error) {
	br := bufio.NewReader(rd)
	var head [4]byte
	if _, err := io.ReadFull(br, head[:]); err != nil || head != magic {
		return nil, ErrBadMagic
	}
	rp := &Replay{}
	seed, err := readSeed(br)
	if err != nil {
		return nil, fmt.Errorf("replay seed: %w", err)
	}
	rp.Seed = seed

	for {
		var e Entry
		if err := e.Decode(br); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("replay entry %d: %w", len(rp.Entries), err)
		}
		rp.Entries = append(rp.Entries, e)
	}
	sort.SliceStable(rp.Entries, func(i, j int) bool { return rp.Entries[i].Tick < rp.Entries[j].Tick })
	return rp, nil
}

// Open loads a replay file
func Open(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// EntriesForTick returns the entries recorded at tick, in recording order
func (r *Replay) EntriesForTick(tick uint64) []Entry {
	lo := sort.Search(len(r.Entries), func(i int) bool { return r.Entries[i].Tick >= tick })
	var result []Entry
	for i := lo; i < len(r.Entries) && r.Entries[i].Tick == tick; i++ {
		result = append(result, r.Entries[i])
	}
	return result
}

// LastTick is the tick of the final entry, or zero for an empty replay
func (r *Replay) LastTick() uint64 {
	if len(r.Entries) == 0 {
		return 0
	}
	return r.Entries[len(r.Entries)-1].Tick
}
