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

// HandleInput conceptualises the input controls of the gearbox session.
type HandleInput interface {
	// Downshift and Upshift attempt a gear transition. Whether anything
	// happens depends on the state of the session (a session with no tracked
	// controller ignores shift input)
	Downshift()
	Upshift()

	// Connected is called when a new controller becomes available.
	Connected(id pad.ID, name string)

	// Disconnected is called when a controller goes away.
	Disconnected(id pad.ID)
}

// HandleUserInput deciphers the Event and forwards the input to the gearbox
// session. Returns true if the event means the session should end and false
// otherwise.
func HandleUserInput(ev Event, handle HandleInput) bool {
	switch ev := ev.(type) {
	case EventQuit:
		return true

	case EventGamepadButton:
		if !ev.Down {
			return false
		}
		switch ev.Button {
		case GamepadButtonX:
			handle.Downshift()
		case GamepadButtonB:
			handle.Upshift()
		case GamepadButtonStart:
			return true
		}

	case EventConnected:
		handle.Connected(ev.ID, ev.Name)

	case EventDisconnected:
		handle.Disconnected(ev.ID)

	default:
	}

	return false
}
