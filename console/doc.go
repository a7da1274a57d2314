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

// Package console is the text presentation layer. It renders the status
// panels and per-event notices and gathers the two numeric prompts at
// startup. Nothing in here affects the state of the session; the Console
// implements the session.Monitor interface and is driven entirely by it.
package console
