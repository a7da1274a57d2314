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

package vehicle_test

import (
	"testing"

	"github.com/shiftfeel/shiftfeel/test"
	"github.com/shiftfeel/shiftfeel/vehicle"
)

func TestParse(t *testing.T) {
	test.Equate(t, vehicle.Parse("550", 300.0), float32(550))
	test.Equate(t, vehicle.Parse("  550.5  ", 300.0), float32(550.5))
	test.Equate(t, vehicle.Parse("550\n", 300.0), float32(550))
}

func TestParseFallback(t *testing.T) {
	// unparsable input falls back to the preferred value
	test.Equate(t, vehicle.Parse("", 300.0), float32(300))
	test.Equate(t, vehicle.Parse("lots", 300.0), float32(300))
	test.Equate(t, vehicle.Parse("12,5", 400.0), float32(400))

	// as does non-positive input
	test.Equate(t, vehicle.Parse("0", 300.0), float32(300))
	test.Equate(t, vehicle.Parse("-100", 300.0), float32(300))
}
