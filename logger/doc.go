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

// Package logger is the central log for the application. Entries are tagged
// and consecutive repeated entries are collapsed into one entry with a
// repeat count. The log holds a fixed maximum number of entries, the oldest
// entries being discarded first.
//
// Every log request states its Permission. Parts of the emulation that might
// be running in a context where logging is undesirable can supply their own
// implementation. In most cases the Allow value should be used.
package logger
