package codec

import "go.trai.ch/zerr"

var (
	// ErrStringTooLong is returned when a string does not fit the u16 length prefix.
	ErrStringTooLong = zerr.New("string exceeds 65535 encoded bytes")

	// ErrMalformedBinary is returned when the input ends early or carries an invalid value.
	ErrMalformedBinary = zerr.New("malformed binary data")
)
