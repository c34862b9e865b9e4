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

package cartridge

import (
	"bytes"
	"fmt"

	"github.com/jetsetilly/commavid/environment"
	"github.com/jetsetilly/commavid/hardware/memory/cartridge/mapper"
)

// the function used to create a mapper from cartridge data.
type mapperCreator func(*environment.Environment, []byte) (mapper.CartMapper, error)

// signatures of instructions that access the CommaVid RAM ports. these are
// attributed to the MESS project.
var commavidSignatures = [][]byte{
	{0x9d, 0xff, 0xf3}, // STA $F3FF,X
	{0x99, 0x00, 0xf4}, // STA $F400,Y
}

func fingerprintCommaVid(data []byte) bool {
	// only the ROM part of a combined image is searched
	if len(data) == commavidCombinedSize {
		data = data[commavidImageSize:]
	}

	for _, sig := range commavidSignatures {
		if bytes.Contains(data, sig) {
			return true
		}
	}
	return false
}

func (cart *Cartridge) fingerprint(data []byte) (mapperCreator, error) {
	switch len(data) {
	case commavidImageSize, commavidCombinedSize:
		if fingerprintCommaVid(data) {
			return NewCommaVid, nil
		}
	}
	return nil, fmt.Errorf("cartridge: %w: unrecognised cartridge data (%d bytes)", ErrUnsupportedMapping, len(data))
}
