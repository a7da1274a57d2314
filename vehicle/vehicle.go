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

// Package vehicle describes the static parameters of the simulated car.
// The parameters are gathered once at startup and never change for the
// duration of the session.
package vehicle

import (
	"strconv"
	"strings"
)

// MaxTorque is the fixed normalisation constant against which the vehicle's
// torque is scaled when deriving rumble intensity.
const MaxTorque = 1000.0

// Defaults used when startup input is missing or unparsable.
const (
	DefaultTorque     = 300.0
	DefaultHorsepower = 400.0
)

// Vehicle is immutable for the session.
type Vehicle struct {
	// torque in lb-ft. always greater than zero
	Torque float32

	// horsepower is display-only. it plays no part in the intensity model
	Horsepower float32
}

// New is the preferred method of initialisation for the Vehicle type.
func New(torque float32, horsepower float32) Vehicle {
	return Vehicle{
		Torque:     torque,
		Horsepower: horsepower,
	}
}

// Parse converts user-supplied text to a vehicle parameter. Unparsable or
// non-positive input falls back to the supplied default rather than failing.
// This is the documented validation policy for all startup input.
func Parse(s string, preferred float32) float32 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil || f <= 0 {
		return preferred
	}
	return float32(f)
}
