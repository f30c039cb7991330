// Package codec implements the binary primitives used to persist schema definitions.
//
// Strings are written as a big-endian u16 byte length followed by UTF-8 bytes,
// integers as big-endian int32 and booleans as a single 0/1 byte. Optional values
// carry a presence boolean and sequences an int32 count.
package codec

import (
	"encoding/binary"
	"io"
	"math"

	"go.trai.ch/zerr"
)

// Writer encodes primitives onto an underlying io.Writer.
type Writer struct {
	w       io.Writer
	scratch [4]byte
}

// NewWriter creates a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) write(p []byte) error {
	if _, err := w.w.Write(p); err != nil {
		return zerr.Wrap(err, "failed to write binary data")
	}
	return nil
}

// WriteBool writes v as a single byte.
func (w *Writer) WriteBool(v bool) error {
	w.scratch[0] = 0
	if v {
		w.scratch[0] = 1
	}
	return w.write(w.scratch[:1])
}

// WriteInt32 writes v in big-endian order.
func (w *Writer) WriteInt32(v int32) error {
	binary.BigEndian.PutUint32(w.scratch[:4], uint32(v))
	return w.write(w.scratch[:4])
}

// WriteUTF writes a length-prefixed UTF-8 string.
func (w *Writer) WriteUTF(s string) error {
	if len(s) > math.MaxUint16 {
		return zerr.With(ErrStringTooLong, "length", len(s))
	}
	binary.BigEndian.PutUint16(w.scratch[:2], uint16(len(s)))
	if err := w.write(w.scratch[:2]); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	if sw, ok := w.w.(io.StringWriter); ok {
		if _, err := sw.WriteString(s); err != nil {
			return zerr.Wrap(err, "failed to write binary data")
		}
		return nil
	}
	return w.write([]byte(s))
}

// WriteCount writes a sequence length.
func (w *Writer) WriteCount(n int) error {
	if n > math.MaxInt32 {
		return zerr.With(zerr.New("sequence too long"), "length", n)
	}
	return w.WriteInt32(int32(n))
}

// WriteStrings writes a length-prefixed sequence of strings.
func (w *Writer) WriteStrings(ss []string) error {
	if err := w.WriteCount(len(ss)); err != nil {
		return err
	}
	for _, s := range ss {
		if err := w.WriteUTF(s); err != nil {
			return err
		}
	}
	return nil
}

// WriteOptionalUTF writes a presence flag followed by *s when s is non-nil.
func (w *Writer) WriteOptionalUTF(s *string) error {
	return WriteOptional(w, s != nil, s, func(w *Writer, s *string) error {
		return w.WriteUTF(*s)
	})
}

// WriteOptional writes a presence flag and, when present, the value using enc.
func WriteOptional[T any](w *Writer, present bool, v T, enc func(*Writer, T) error) error {
	if err := w.WriteBool(present); err != nil {
		return err
	}
	if !present {
		return nil
	}
	return enc(w, v)
}

// WriteSlice writes a length-prefixed sequence of records using enc for each item.
func WriteSlice[T any](w *Writer, items []T, enc func(*Writer, *T) error) error {
	if err := w.WriteCount(len(items)); err != nil {
		return err
	}
	for i := range items {
		if err := enc(w, &items[i]); err != nil {
			return err
		}
	}
	return nil
}
