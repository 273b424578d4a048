package emitter

import (
	"encoding/hex"
	"fmt"
	"io"
)

// Line is one decoded instruction of a listing.
type Line struct {
	Addr  uint64
	Bytes []byte
	Text  string
}

// Word returns the instruction bits as the hex a reader expects: 8 digits
// for a 32-bit word, 4 for a compressed one, raw bytes otherwise.
func (l Line) Word() string {
	switch len(l.Bytes) {
	case 4:
		return fmt.Sprintf("%08x", uint32(l.Bytes[0])|uint32(l.Bytes[1])<<8|uint32(l.Bytes[2])<<16|uint32(l.Bytes[3])<<24)
	case 2:
		return fmt.Sprintf("%04x", uint16(l.Bytes[0])|uint16(l.Bytes[1])<<8)
	}
	return hex.EncodeToString(l.Bytes)
}

// WriteListing prints lines as "addr: word  text".
func WriteListing(w io.Writer, lines []Line) error {
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%#010x: %-8s  %s\n", l.Addr, l.Word(), l.Text); err != nil {
			return err
		}
	}
	return nil
}
