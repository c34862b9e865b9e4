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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions test for success, failure, equality and inequality.
// The Demand functions are the same but stop the test immediately on
// failure. The documentation for expect() describes how the various types
// are interpreted as success or failure values.
//
// It is worth describing how nil is handled because it is not obvious. The
// nil type is considered a success and consequently will cause ExpectFailure
// to fail and ExpectSuccess to succeed. This is because of how errors usually
// work (nil to indicate no error).
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The CappedWriter type is an io.Writer that accepts
// only a fixed number of bytes. It is useful for provoking short writes.
package test
