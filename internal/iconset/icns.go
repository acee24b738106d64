package iconset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidICNS is returned when an ICNS stream is malformed.
var ErrInvalidICNS = errors.New("invalid icns data")

var icnsMagic = [4]byte{'i', 'c', 'n', 's'}

// headerLen is the size of both the file header and each element header:
// a four-byte type followed by a big-endian uint32 length.
const headerLen = 8

// Entry is one element of an ICNS container.
type Entry struct {
	Type [4]byte
	Data []byte
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (%d bytes)", e.Type[:], len(e.Data))
}

// osTypes maps renditions to the ICNS element types that hold PNG data.
var osTypes = map[Variant][4]byte{
	{16, 1}:  {'i', 'c', 'p', '4'},
	{16, 2}:  {'i', 'c', '1', '1'},
	{32, 1}:  {'i', 'c', 'p', '5'},
	{32, 2}:  {'i', 'c', '1', '2'},
	{128, 1}: {'i', 'c', '0', '7'},
	{128, 2}: {'i', 'c', '1', '3'},
	{256, 1}: {'i', 'c', '0', '8'},
	{256, 2}: {'i', 'c', '1', '4'},
	{512, 1}: {'i', 'c', '0', '9'},
	{512, 2}: {'i', 'c', '1', '0'},
}

// OSType returns the ICNS element type for v.
func OSType(v Variant) ([4]byte, bool) {
	t, ok := osTypes[v]
	return t, ok
}

// WriteICNS encodes entries as an ICNS container.
//
// The layout is the "icns" magic and the total file length, followed by each
// entry as its type, its length including the 8-byte header, and its data.
// All lengths are big-endian.
func WriteICNS(w io.Writer, entries []Entry) error {
	total := headerLen
	for _, e := range entries {
		total += headerLen + len(e.Data)
	}
	if uint64(total) > 0xFFFFFFFF {
		return fmt.Errorf("icns too large: %d bytes", total)
	}

	var buf bytes.Buffer
	buf.Grow(total)
	buf.Write(icnsMagic[:])
	binary.Write(&buf, binary.BigEndian, uint32(total))
	for _, e := range entries {
		buf.Write(e.Type[:])
		binary.Write(&buf, binary.BigEndian, uint32(headerLen+len(e.Data)))
		buf.Write(e.Data)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// ReadICNS decodes an ICNS container into its entries, in file order.
func ReadICNS(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < headerLen || !bytes.Equal(data[:4], icnsMagic[:]) {
		return nil, fmt.Errorf("%w: missing icns header", ErrInvalidICNS)
	}
	total := int(binary.BigEndian.Uint32(data[4:8]))
	if total != len(data) {
		return nil, fmt.Errorf("%w: header length %d, have %d bytes", ErrInvalidICNS, total, len(data))
	}

	var entries []Entry
	for off := headerLen; off < total; {
		if total-off < headerLen {
			return nil, fmt.Errorf("%w: truncated element at offset %d", ErrInvalidICNS, off)
		}
		var e Entry
		copy(e.Type[:], data[off:off+4])
		n := int(binary.BigEndian.Uint32(data[off+4 : off+8]))
		if n < headerLen || off+n > total {
			return nil, fmt.Errorf("%w: element %s length %d out of range", ErrInvalidICNS, e.Type[:], n)
		}
		e.Data = data[off+headerLen : off+n]
		entries = append(entries, e)
		off += n
	}
	return entries, nil
}
