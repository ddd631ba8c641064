// Package formats implements the binary encodings of the map document files:
// .hv (full document), .anms (animations exchange) and .prps (props
// exchange). All integers are little-endian. Every stream starts with a
// 4-byte magic and a version byte; unknown magics and versions abort before
// any further bytes are interpreted.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Codec errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrMalformedRecord    = errors.New("malformed record")
)

// Version is the current format version, shared by all three file kinds.
const Version uint8 = 1

// File magics.
const (
	hvMagic   = "HVMP"
	anmsMagic = "HVAN"
	prpsMagic = "HVPR"
)

// checkHeader validates magic and version and returns a reader positioned
// after them.
func checkHeader(data []byte, magic, kind string) (*reader, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("%w: %s: truncated header", ErrMalformedRecord, kind)
	}
	if string(data[:4]) != magic {
		return nil, fmt.Errorf("%w: %s: expected %q", ErrInvalidMagic, kind, magic)
	}
	if data[4] != Version {
		return nil, fmt.Errorf("%w: %s: version %d", ErrUnsupportedVersion, kind, data[4])
	}
	return &reader{r: bytes.NewReader(data[5:]), base: 5, kind: kind}, nil
}

// reader wraps a bytes.Reader with section tracking so malformed-record
// errors carry the file kind, the section being parsed and the byte offset.
type reader struct {
	r       *bytes.Reader
	base    int64
	kind    string
	section string
}

func (r *reader) offset() int64 {
	return r.base + r.r.Size() - int64(r.r.Len())
}

func (r *reader) fail(what string) error {
	return fmt.Errorf("%w: %s: %s: %s at byte %d", ErrMalformedRecord, r.kind, r.section, what, r.offset())
}

func (r *reader) failf(format string, args ...any) error {
	return r.fail(fmt.Sprintf(format, args...))
}

func (r *reader) remaining() int {
	return r.r.Len()
}

func (r *reader) u8(what string) (uint8, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, r.fail(what)
	}
	return b, nil
}

func (r *reader) bool(what string) (bool, error) {
	b, err := r.u8(what)
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (r *reader) u16(what string) (uint16, error) {
	var v uint16
	if err := binary.Read(r.r, binary.LittleEndian, &v); err != nil {
		return 0, r.fail(what)
	}
	return v, nil
}

func (r *reader) u32(what string) (uint32, error) {
	var v uint32
	if err := binary.Read(r.r, binary.LittleEndian, &v); err != nil {
		return 0, r.fail(what)
	}
	return v, nil
}

func (r *reader) u64(what string) (uint64, error) {
	var v uint64
	if err := binary.Read(r.r, binary.LittleEndian, &v); err != nil {
		return 0, r.fail(what)
	}
	return v, nil
}

func (r *reader) f32(what string) (float32, error) {
	var v float32
	if err := binary.Read(r.r, binary.LittleEndian, &v); err != nil {
		return 0, r.fail(what)
	}
	return v, nil
}

func (r *reader) f64(what string) (float64, error) {
	var v float64
	if err := binary.Read(r.r, binary.LittleEndian, &v); err != nil {
		return 0, r.fail(what)
	}
	return v, nil
}

// str reads a u16 length-prefixed UTF-8 string.
func (r *reader) str(what string) (string, error) {
	n, err := r.u16(what)
	if err != nil {
		return "", err
	}
	if int(n) > r.r.Len() {
		return "", r.failf("%s length %d exceeds remaining data", what, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return "", r.fail(what)
	}
	return string(buf), nil
}

// count reads a u64 element count and sanity-checks it against the bytes
// left in the stream, each element needing at least min bytes.
func (r *reader) count(what string, min int) (int, error) {
	n, err := r.u64(what)
	if err != nil {
		return 0, err
	}
	if min > 0 && n > uint64(r.r.Len()/min)+1 {
		return 0, r.failf("%s %d exceeds remaining data", what, n)
	}
	if n > math.MaxInt32 {
		return 0, r.failf("%s %d is implausibly large", what, n)
	}
	return int(n), nil
}

// writer accumulates little-endian output. bytes.Buffer writes cannot fail,
// so only string lengths are checked.
type writer struct {
	buf bytes.Buffer
}

func (w *writer) header(magic string) {
	w.buf.WriteString(magic)
	w.u8(Version)
}

func (w *writer) u8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *writer) bool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *writer) u16(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

func (w *writer) u32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

func (w *writer) u64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.buf.Write(buf[:])
}

func (w *writer) f32(v float32) {
	w.u32(math.Float32bits(v))
}

func (w *writer) f64(v float64) {
	w.u64(math.Float64bits(v))
}

func (w *writer) str(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("string of %d bytes exceeds the %d byte limit", len(s), math.MaxUint16)
	}
	w.u16(uint16(len(s)))
	w.buf.WriteString(s)
	return nil
}

func (w *writer) bytes() []byte {
	return w.buf.Bytes()
}
