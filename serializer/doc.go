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

// Package serializer writes and reads the primitive values that make up a
// saved emulation state. Values are written in the order they are put and
// must be read back in the same order. There are no type markers in the
// stream; the reader must know what to expect.
//
// Integers are big endian. Strings are prefixed with their length as a 32bit
// integer. Byte arrays are written raw, the reader is expected to know the
// length of the array.
//
// The first error encountered by a Serializer is sticky. Subsequent calls do
// nothing and return the same error. This allows a sequence of values to be
// put or got with only a single check of the error at the end.
package serializer
