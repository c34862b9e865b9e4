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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/commavid/hardware/memory/memorymap"
	"github.com/jetsetilly/commavid/test"
)

func TestPages(t *testing.T) {
	test.ExpectEquality(t, memorymap.NumPages, 128)
	test.ExpectEquality(t, memorymap.PageSize, uint16(64))
	test.ExpectEquality(t, memorymap.Page(0x1000), uint16(0x40))
	test.ExpectEquality(t, memorymap.Page(0xf000), uint16(0x40))
	test.ExpectEquality(t, memorymap.Page(0x1fff), uint16(0x7f))
	test.ExpectEquality(t, memorymap.Page(0x003f), uint16(0x00))
	test.ExpectEquality(t, memorymap.Page(0x0040), uint16(0x01))
}

func TestCartridgeMirrors(t *testing.T) {
	test.ExpectEquality(t, uint16(0x1123)&memorymap.CartridgeBits, uint16(0xf123)&memorymap.CartridgeBits)
	test.ExpectEquality(t, memorymap.IsCartridge(0xf000), true)
	test.ExpectEquality(t, memorymap.IsCartridge(0x0fff), false)
	test.ExpectEquality(t, memorymap.MapAddress(0xf400), uint16(0x1400))
}
