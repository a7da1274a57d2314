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

// Package haptics derives force feedback pulses from the torque
// characteristics of the simulated vehicle.
//
// The Intensity() function is pure and requires no device to be present. The
// Command type carries the derived actuator magnitudes and is consumed by
// whichever device implementation is in use.
package haptics

import (
	"math"
	"time"
)

// Shift direction multipliers. A downshift simulates the sharper pulse of
// engine braking. An upshift is lighter.
const (
	downshiftMultiplier = 1.3
	upshiftMultiplier   = 0.8
)

// The weak motor always runs at this fraction of the strong motor's scaled
// intensity.
const weakMotorScale = 0.7

// Fixed pulse durations. Not scaled by intensity.
const (
	DownshiftDuration = 200 * time.Millisecond
	UpshiftDuration   = 150 * time.Millisecond
)

// MaxMagnitude is the largest value accepted by either actuator motor.
const MaxMagnitude = 65535

// Intensity returns the normalised rumble intensity for a shift. The base
// value is the fraction of maxTorque that torque represents, scaled by the
// shift direction multiplier. The result is saturated to the range 0.0 to
// 1.0. Values outside the range are never an error.
func Intensity(torque float32, maxTorque float32, downshift bool) float32 {
	intensity := torque / maxTorque

	if downshift {
		intensity *= downshiftMultiplier
	} else {
		intensity *= upshiftMultiplier
	}

	if intensity > 1.0 {
		intensity = 1.0
	}
	if intensity < 0.0 {
		intensity = 0.0
	}

	return intensity
}

// Command is a single fire-and-forget rumble pulse. It has no lifecycle
// beyond the one actuator call it parameterises.
type Command struct {
	Strong   uint16
	Weak     uint16
	Duration time.Duration
}

// NewCommand derives the actuator magnitudes for a pulse of the given
// intensity. Magnitudes are rounded to the nearest integer (as opposed to
// truncated) and the weak motor is always 70% of the strong motor.
func NewCommand(intensity float32, downshift bool) Command {
	cmd := Command{
		Strong: uint16(math.Round(float64(intensity) * MaxMagnitude)),
		Weak:   uint16(math.Round(float64(intensity) * weakMotorScale * MaxMagnitude)),
	}

	if downshift {
		cmd.Duration = DownshiftDuration
	} else {
		cmd.Duration = UpshiftDuration
	}

	return cmd
}
