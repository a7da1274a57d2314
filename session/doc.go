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

// Package session orchestrates a single run of the simulator. The Session
// owns the gearbox, the vehicle parameters and the identity of the tracked
// controller, and drives the poll/dispatch loop.
//
// Everything is confined to the one goroutine that calls Run(). Controller
// connect and disconnect events are observed and applied synchronously within
// the same loop iteration that produced them so no locking is needed
// anywhere.
//
// The Session talks to hardware through the System interface and to the user
// through the Monitor interface, which keeps it fully testable without a
// controller present.
package session
