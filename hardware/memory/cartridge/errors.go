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

import "errors"

// Sentinel errors returned by the cartridge package. Errors returned by the
// package wrap one of these and should be tested with errors.Is().
var (
	// the cartridge data cannot be used to create the cartridge mapper
	ErrConstruction = errors.New("cannot create cartridge")

	// the mapping requested (or found by fingerprinting) is not supported
	ErrUnsupportedMapping = errors.New("unsupported mapping")

	// the cartridge data does not have the expected hash
	ErrUnexpectedHash = errors.New("unexpected hash value")

	// there is no cartridge attached
	ErrNoCartridge = errors.New("no cartridge attached")

	// the state could not be saved
	ErrSave = errors.New("save failed")

	// the state could not be loaded
	ErrLoad = errors.New("load failed")

	// the state being loaded is for a different cartridge mapper. the state
	// of the cartridge is untouched
	ErrNotMyState = errors.New("state is for a different cartridge")
)
