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

package random_test

import (
	"testing"

	"github.com/jetsetilly/commavid/random"
	"github.com/jetsetilly/commavid/test"
)

type clock struct {
	cycles int64
}

func (c *clock) Cycles() int64 {
	return c.cycles
}

func TestRewindable(t *testing.T) {
	clk := &clock{cycles: 1000}
	a := random.NewRandom(clk)
	b := random.NewRandom(clk)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}
}

func TestNoRewind(t *testing.T) {
	a := random.NewRandom(nil)
	b := random.NewRandom(nil)
	a.ZeroSeed = true
	b.ZeroSeed = true

	var sa, sb []int
	for i := 0; i < 16; i++ {
		sa = append(sa, a.NoRewind(0xff))
		sb = append(sb, b.NoRewind(0xff))
	}
	for i := range sa {
		test.ExpectEquality(t, sa[i], sb[i], i)
	}

	// after a reset the sequence starts again
	a.Reset()
	test.ExpectEquality(t, a.NoRewind(0xff), sa[0])
}
