package codec

import (
	"encoding/binary"
	"io"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// maxPrealloc bounds slice preallocation so a corrupt count cannot force a huge allocation.
const maxPrealloc = 64

// Reader decodes primitives written by Writer.
type Reader struct {
	r       io.Reader
	scratch [4]byte
}

// NewReader creates a Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) read(p []byte) error {
	if _, err := io.ReadFull(r.r, p); err != nil {
		return zerr.Wrap(err, ErrMalformedBinary.Error())
	}
	return nil
}

// ReadBool reads a single 0/1 byte.
func (r *Reader) ReadBool() (bool, error) {
	if err := r.read(r.scratch[:1]); err != nil {
		return false, err
	}
	switch r.scratch[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, zerr.With(ErrMalformedBinary, "bool", int(r.scratch[0]))
	}
}

// ReadInt32 reads a big-endian int32.
func (r *Reader) ReadInt32() (int32, error) {
	if err := r.read(r.scratch[:4]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(r.scratch[:4])), nil
}

// ReadUTF reads a length-prefixed UTF-8 string.
func (r *Reader) ReadUTF() (string, error) {
	if err := r.read(r.scratch[:2]); err != nil {
		return "", err
	}
	n := int(binary.BigEndian.Uint16(r.scratch[:2]))
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if err := r.read(buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", zerr.With(ErrMalformedBinary, "reason", "invalid utf-8")
	}
	return string(buf), nil
}

// ReadCount reads a sequence length and rejects negative values.
func (r *Reader) ReadCount() (int, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, zerr.With(ErrMalformedBinary, "count", int(n))
	}
	return int(n), nil
}

// ReadStrings reads a length-prefixed sequence of strings.
// An empty sequence decodes as nil.
func (r *Reader) ReadStrings() ([]string, error) {
	return ReadSlice(r, (*Reader).ReadUTF)
}

// ReadOptionalUTF reads a presence flag and the string when present.
func (r *Reader) ReadOptionalUTF() (*string, error) {
	s, ok, err := ReadOptional(r, (*Reader).ReadUTF)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

// ReadOptional reads a presence flag and, when present, decodes the value with dec.
func ReadOptional[T any](r *Reader, dec func(*Reader) (T, error)) (T, bool, error) {
	var zero T
	present, err := r.ReadBool()
	if err != nil || !present {
		return zero, false, err
	}
	v, err := dec(r)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// ReadSlice reads a length-prefixed sequence of records using dec for each item.
// An empty sequence decodes as nil.
func ReadSlice[T any](r *Reader, dec func(*Reader) (T, error)) ([]T, error) {
	n, err := r.ReadCount()
	if err != nil || n == 0 {
		return nil, err
	}
	items := make([]T, 0, min(n, maxPrealloc))
	for range n {
		v, err := dec(r)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}
