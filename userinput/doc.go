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

// Package userinput handles input from the real controller hardware the user
// is shifting gears with.
//
// It can be thought of as a translation layer between the device subsystem
// implementation and the session package. As such, this package attempts to
// hide details of the device implementation while protecting the session
// from complication.
//
// The device subsystem in use during development was SDL and so there will
// be a bias towards that system.
package userinput
