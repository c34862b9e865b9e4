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

// Package preferences holds the preferences that affect the emulated
// hardware.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/commavid/prefs"
)

// Preferences for the emulated hardware.
type Preferences struct {
	// initialise hardware to unknown state after reset. cartridge RAM that
	// has no initial image will be filled with random values rather than
	// zero
	RandomState prefs.Bool

	// unused pins when reading from the data bus take the value of the last
	// value on the bus. if RandomPins is true then the values of the unused
	// pins are randomised. this is the equivalent of the Stella option "drive
	// unused pins randomly on a read/peek"
	RandomPins prefs.Bool
}

// the keys used for each preference on the command line
const (
	randStateKey = "hardware.randstate"
	randPinsKey  = "hardware.randpins"
)

func (p *Preferences) String() string {
	return fmt.Sprintf("%s: %s\n%s: %s", randStateKey, p.RandomState.String(), randPinsKey, p.RandomPins.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are set to the defaults and then overridden by any
// values in the current command line group.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if err := p.ApplyCommandLine(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.RandomPins.Set(false)
}

// ApplyCommandLine sets preferences from the current command line group.
func (p *Preferences) ApplyCommandLine() error {
	if _, err := prefs.ApplyCommandLinePref(randStateKey, &p.RandomState); err != nil {
		return fmt.Errorf("preferences: %w", err)
	}
	if _, err := prefs.ApplyCommandLinePref(randPinsKey, &p.RandomPins); err != nil {
		return fmt.Errorf("preferences: %w", err)
	}
	return nil
}
