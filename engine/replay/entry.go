package replay

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/1siamBot/geoscape/engine/dogfight"
)

// ErrBadMagic is returned when a stream does not start with the replay header
var ErrBadMagic = errors.New("not a dogfight replay")

var magic = [4]byte{'G', 'D', 'F', 1}

// Entry is one player command applied to one interception window
type Entry struct {
	Tick         uint64
	Interception int
	Command      dogfight.Command
}

// Encode writes an entry to binary
func (e *Entry) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, e.Tick); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(e.Interception)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, uint8(e.Command))
}

// Decode reads an entry from binary. A stream that ends cleanly before
// the entry returns io.EOF.
func (e *Entry) Decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &e.Tick); err != nil {
		return err
	}
	var slot, cmd uint8
	if err := binary.Read(r, binary.LittleEndian, &slot); err != nil {
		return unexpected(err)
	}
	if err := binary.Read(r, binary.LittleEndian, &cmd); err != nil {
		return unexpected(err)
	}
	e.Interception = int(slot)
	e.Command = dogfight.Command(cmd)
	return nil
}

// a stream cut mid-entry is corrupt, not finished
func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
