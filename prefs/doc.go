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

// Package prefs facilitates the storage of preference values. Preference
// values are one of the types defined in this package (Bool, String, Int)
// and are safe to read and write from different goroutines.
//
// Preferences can also be specified on the command line with a preferences
// string. The string is pushed onto the command line stack and the values
// can then be applied to preference values with ApplyCommandLinePref(). For
// example:
//
//	prefs.PushCommandLineStack("hardware.randstate::true")
//	defer prefs.PopCommandLineStack()
//	prefs.ApplyCommandLinePref("hardware.randstate", &p.RandomState)
package prefs
