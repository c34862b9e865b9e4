// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package serializer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors returned by the serializer.
var (
	ErrStringTooLong = errors.New("string too long")
	ErrNoSink        = errors.New("serializer has no sink")
	ErrNoSource      = errors.New("serializer has no source")
)

// maximum length of a string in the stream. saved state should never
// contain strings anywhere near this long so a longer length indicates a
// corrupted stream
const maxStringLen = 1024

// Serializer wraps an io.Reader and/or io.Writer.
type Serializer struct {
	in  io.Reader
	out io.Writer
	err error
}

// NewSerializer is the preferred method of initialisation for the Serializer
// type. Either argument can be nil if the Serializer is to be used in only one
// direction.
func NewSerializer(in io.Reader, out io.Writer) *Serializer {
	return &Serializer{
		in:  in,
		out: out,
	}
}

// NewWriter returns a Serializer that can only put values.
func NewWriter(out io.Writer) *Serializer {
	return NewSerializer(nil, out)
}

// NewReader returns a Serializer that can only get values.
func NewReader(in io.Reader) *Serializer {
	return NewSerializer(in, nil)
}

// Err returns the first error encountered by the Serializer.
func (s *Serializer) Err() error {
	return s.err
}

func (s *Serializer) write(p []byte) error {
	if s.err != nil {
		return s.err
	}
	if s.out == nil {
		s.err = fmt.Errorf("serializer: %w", ErrNoSink)
		return s.err
	}

	n, err := s.out.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.err = fmt.Errorf("serializer: %w", err)
	}
	return s.err
}

func (s *Serializer) read(p []byte) error {
	if s.err != nil {
		return s.err
	}
	if s.in == nil {
		s.err = fmt.Errorf("serializer: %w", ErrNoSource)
		return s.err
	}

	if _, err := io.ReadFull(s.in, p); err != nil {
		s.err = fmt.Errorf("serializer: %w", err)
	}
	return s.err
}

// PutByte writes a single byte.
func (s *Serializer) PutByte(v uint8) error {
	return s.write([]byte{v})
}

// PutBool writes a boolean as a single byte.
func (s *Serializer) PutBool(v bool) error {
	if v {
		return s.PutByte(1)
	}
	return s.PutByte(0)
}

// PutInt writes a 32bit integer.
func (s *Serializer) PutInt(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return s.write(b[:])
}

// PutString writes a length prefixed string.
func (s *Serializer) PutString(v string) error {
	if len(v) > maxStringLen {
		if s.err == nil {
			s.err = fmt.Errorf("serializer: %w (%d)", ErrStringTooLong, len(v))
		}
		return s.err
	}
	if err := s.PutInt(uint32(len(v))); err != nil {
		return err
	}
	return s.write([]byte(v))
}

// PutByteArray writes the bytes of the array. The length of the array is not
// written.
func (s *Serializer) PutByteArray(v []uint8) error {
	return s.write(v)
}

// GetByte reads a single byte.
func (s *Serializer) GetByte() (uint8, error) {
	var b [1]byte
	err := s.read(b[:])
	return b[0], err
}

// GetBool reads a boolean. Any non-zero value is true.
func (s *Serializer) GetBool() (bool, error) {
	v, err := s.GetByte()
	return v != 0, err
}

// GetInt reads a 32bit integer.
func (s *Serializer) GetInt() (uint32, error) {
	var b [4]byte
	if err := s.read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// GetString reads a length prefixed string.
func (s *Serializer) GetString() (string, error) {
	l, err := s.GetInt()
	if err != nil {
		return "", err
	}
	if l > maxStringLen {
		s.err = fmt.Errorf("serializer: %w (%d)", ErrStringTooLong, l)
		return "", s.err
	}
	b := make([]byte, l)
	if err := s.read(b); err != nil {
		return "", err
	}
	return string(b), nil
}

// GetByteArray fills the array with bytes from the stream. The array is
// partially filled if there is an error.
func (s *Serializer) GetByteArray(v []uint8) error {
	return s.read(v)
}
