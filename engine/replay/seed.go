package replay

import (
	"encoding/binary"
	"io"
)

func writeSeed(w io.Writer, seed int64) error {
	return binary.Write(w, binary.LittleEndian, seed)
}

func readSeed(r io.Reader) (int64, error) {
	var seed int64
	err := binary.Read(r, binary.LittleEndian, &seed)
	return seed, err
}
