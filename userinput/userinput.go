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

package userinput

import (
	"github.com/shiftfeel/shiftfeel/pad"
)

// Event represents any input from the device subsystem. The underlying type
// is one of the Event* types defined in this package.
type Event interface{}

// EventQuit is sent when the device subsystem asks the application to end
// (window close, SIGINT forwarded by SDL, etc).
type EventQuit struct{}

// GamepadButton identifies the buttons we distinguish between. Any other
// button on the physical controller maps to GamepadButtonNone.
type GamepadButton int

// List of valid GamepadButton values.
const (
	GamepadButtonNone GamepadButton = iota

	// west position (X on an xbox layout). the downshift control
	GamepadButtonX

	// east position (B on an xbox layout). the upshift control
	GamepadButtonB

	// the exit control
	GamepadButtonStart
)

// EventGamepadButton is the pressing or releasing of a button on a gamepad.
type EventGamepadButton struct {
	ID     pad.ID
	Button GamepadButton
	Down   bool
}

// EventConnected is sent when a controller is plugged in mid-session.
type EventConnected struct {
	ID   pad.ID
	Name string
}

// EventDisconnected is sent when a controller is unplugged.
type EventDisconnected struct {
	ID pad.ID
}
