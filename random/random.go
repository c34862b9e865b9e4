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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of time within the emulation. The host bus counts the
// number of bus accesses and that count is a good enough measure of time for
// our purposes.
type Clock interface {
	Cycles() int64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// number of calls to NoRewind()
	sequence int64

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clock argument can be nil, in which case time is always zero.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// SetClock changes the source of emulation time.
func (rnd *Random) SetClock(clock Clock) {
	rnd.clock = clock
}

func (rnd *Random) seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return baseSeed
}

func (rnd *Random) cycles() int64 {
	if rnd.clock == nil {
		return 0
	}
	return rnd.clock.Cycles()
}

// Rewindable returns a random number in the range [0,n). The number is the
// same for the same emulation time.
func (rnd *Random) Rewindable(n int) int {
	return rand.New(rand.NewSource(rnd.seed() + rnd.cycles())).Intn(n)
}

// NoRewind returns a random number in the range [0,n). Successive calls at the
// same emulation time return different numbers.
func (rnd *Random) NoRewind(n int) int {
	rnd.sequence++
	return rand.New(rand.NewSource(rnd.seed() + rnd.cycles() + rnd.sequence)).Intn(n)
}

// Reset the NoRewind() sequence.
func (rnd *Random) Reset() {
	rnd.sequence = 0
}
