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

// Package system is a minimal host for devices attached to the VCS
// address/data bus. It owns the page table and the state of the data bus and
// dispatches CPU accesses either directly through the page table or, when a
// page does not describe the access, to the device that registered the page.
//
// It is not a complete emulation of the VCS memory. Only the cartridge area
// is populated by devices. Accesses to addresses without a device return the
// floating value of the data bus.
package system
