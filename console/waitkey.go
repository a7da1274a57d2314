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

package console

import (
	"github.com/pkg/term"
)

// WaitAnyKey blocks until a single key is pressed. Used to acknowledge
// startup conditions that prevent the session from running.
//
// The single-key read needs the controlling tty in raw mode. When there is
// no tty (output redirected, CI) we settle for a line of input instead.
func (c *Console) WaitAnyKey() {
	c.print("press any key to exit... ")

	t, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		c.readLine("")
		return
	}
	defer t.Close()
	defer t.Restore()

	b := make([]byte, 1)
	_, _ = t.Read(b)
	c.print("\n")
}
