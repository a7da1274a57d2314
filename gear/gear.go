// This file is part of ShiftFeel.
//
// ShiftFeel is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ShiftFeel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ShiftFeel.  If not, see <https://www.gnu.org/licenses/>.

// Package gear implements the sequential gearbox at the centre of the
// simulation. The gearbox is a bounded counter. Shifting past either end of
// the range is not an error, it simply leaves the gearbox where it is and
// tells the caller that the boundary has been reached.
package gear

// Range of selectable gears and the gear selected when a session begins.
const (
	Lowest  = 1
	Highest = 6
	Initial = 3
)

// Result of a shift attempt.
type Result int

// List of valid Result values.
const (
	Shifted Result = iota
	AtLowest
	AtHighest
)

func (r Result) String() string {
	switch r {
	case Shifted:
		return "shifted"
	case AtLowest:
		return "already in lowest gear"
	case AtHighest:
		return "already in highest gear"
	}
	return "unknown"
}

// Box is a sequential gearbox. The zero value is not useful, use NewBox().
type Box struct {
	current int
}

// NewBox is the preferred method of initialisation for the Box type. The
// returned gearbox is in the Initial gear.
func NewBox() *Box {
	return &Box{current: Initial}
}

// Current returns the currently selected gear.
func (b *Box) Current() int {
	return b.current
}

// Upshift selects the next gear up. If the gearbox is already in the highest
// gear the selection is left unchanged and AtHighest is returned.
func (b *Box) Upshift() Result {
	if b.current >= Highest {
		return AtHighest
	}
	b.current++
	return Shifted
}

// Downshift selects the next gear down. If the gearbox is already in the
// lowest gear the selection is left unchanged and AtLowest is returned.
func (b *Box) Downshift() Result {
	if b.current <= Lowest {
		return AtLowest
	}
	b.current--
	return Shifted
}
