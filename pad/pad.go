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

// Package pad defines how connected game controllers are identified. The
// identifiers are produced by the device subsystem (the sdlpad package in a
// normal build) and correlate input events with actuator calls.
package pad

// ID is an opaque identifier for a connected controller. IDs are stable for
// as long as the controller remains connected.
type ID int32

// NoID indicates the absence of a tracked controller. A session with no
// tracked controller ignores all shift input.
const NoID ID = -1

// Info describes a connected controller.
type Info struct {
	ID   ID
	Name string
}
