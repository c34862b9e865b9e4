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

package cartridgeloader

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".BIN", ".ROM", ".A26", ".CV"}

// AutoMapping is the mapping value that indicates the cartridge data should be
// fingerprinted.
const AutoMapping = "AUTO"

// mappingFromExtension returns the mapping implied by the file extension.
// Extensions that are not specific to a mapping return AutoMapping.
func mappingFromExtension(ext string) string {
	switch ext {
	case ".CV":
		return "CV"
	}
	return AutoMapping
}
