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

// Package modalflag wraps the flag package of the standard library and adds
// the concept of program modes. Each mode has its own set of flags.
//
// The arguments are given to the Modes type with NewArgs() and then parsed
// with Parse(). For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("INFO", "DUMP")
//	r, err := md.Parse()
//
// After a successful Parse() the selected mode is returned by Mode(). If the
// first argument is not one of the sub-modes then the first sub-mode in the
// list is used. The path of modes selected so far is returned by Path().
//
// Flags for the selected mode are added after a call to NewMode():
//
//	md.NewMode()
//	output := md.AddString("o", "", "output file")
//	r, err = md.Parse()
//
// Sub-mode names are case insensitive and are always reported in upper case.
//
// A help message is printed to the Output writer if the -help or -h flag is
// found. The message lists the flags and the sub-modes for the current mode.
package modalflag
