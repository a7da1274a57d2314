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

// Package sdlpad is the SDL implementation of the device subsystem. It
// opens connected gamepads through the SDL game controller API, translates
// queued SDL events into userinput events and forwards rumble commands to
// the controller's force feedback motors.
//
// SDL requires that event handling happens on the OS thread that initialised
// it. NewSystem() locks the calling goroutine to its thread; keep all calls
// into this package on that goroutine.
package sdlpad
