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

// Package notifications defines the user-visible notices the session can
// produce. The notices are presentation-only. None of them affect the state
// of the gearbox and none of them are fatal.
package notifications

// Notice describes events that the user should be told about but which carry
// no additional data.
type Notice string

// List of defined notifications.
const (
	// an attempt to shift beyond either end of the gear range
	NotifyAtLowest  Notice = "NotifyAtLowest"
	NotifyAtHighest Notice = "NotifyAtHighest"

	// the tracked controller has no force feedback support. the shift still
	// happened, only the pulse is missing
	NotifyRumbleUnsupported Notice = "NotifyRumbleUnsupported"

	// a rumble pulse was sent to the controller
	NotifyRumbled Notice = "NotifyRumbled"

	// controller arrival and departure
	NotifyConnected    Notice = "NotifyConnected"
	NotifyDisconnected Notice = "NotifyDisconnected"
)
