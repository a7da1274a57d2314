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

package userinput_test

import (
	"testing"

	"github.com/shiftfeel/shiftfeel/pad"
	"github.com/shiftfeel/shiftfeel/test"
	"github.com/shiftfeel/shiftfeel/userinput"
)

type probe struct {
	downshifts   int
	upshifts     int
	connected    pad.ID
	disconnected pad.ID
}

func (p *probe) Downshift() { p.downshifts++ }
func (p *probe) Upshift()   { p.upshifts++ }

func (p *probe) Connected(id pad.ID, _ string) { p.connected = id }
func (p *probe) Disconnected(id pad.ID)        { p.disconnected = id }

func TestButtonRouting(t *testing.T) {
	p := &probe{connected: pad.NoID, disconnected: pad.NoID}

	quit := userinput.HandleUserInput(userinput.EventGamepadButton{ID: 1, Button: userinput.GamepadButtonX, Down: true}, p)
	test.Equate(t, quit, false)
	test.Equate(t, p.downshifts, 1)

	quit = userinput.HandleUserInput(userinput.EventGamepadButton{ID: 1, Button: userinput.GamepadButtonB, Down: true}, p)
	test.Equate(t, quit, false)
	test.Equate(t, p.upshifts, 1)

	// button releases are not shifts
	quit = userinput.HandleUserInput(userinput.EventGamepadButton{ID: 1, Button: userinput.GamepadButtonX, Down: false}, p)
	test.Equate(t, quit, false)
	test.Equate(t, p.downshifts, 1)

	// unmapped buttons are ignored
	quit = userinput.HandleUserInput(userinput.EventGamepadButton{ID: 1, Button: userinput.GamepadButtonNone, Down: true}, p)
	test.Equate(t, quit, false)
	test.Equate(t, p.downshifts, 1)
	test.Equate(t, p.upshifts, 1)
}

func TestQuitRouting(t *testing.T) {
	p := &probe{}
	test.Equate(t, userinput.HandleUserInput(userinput.EventQuit{}, p), true)
	test.Equate(t, userinput.HandleUserInput(userinput.EventGamepadButton{Button: userinput.GamepadButtonStart, Down: true}, p), true)

	// the release of the exit control is not a second quit
	test.Equate(t, userinput.HandleUserInput(userinput.EventGamepadButton{Button: userinput.GamepadButtonStart, Down: false}, p), false)
}

func TestConnectionRouting(t *testing.T) {
	p := &probe{connected: pad.NoID, disconnected: pad.NoID}

	userinput.HandleUserInput(userinput.EventConnected{ID: 7, Name: "pad"}, p)
	test.Equate(t, int(p.connected), 7)

	userinput.HandleUserInput(userinput.EventDisconnected{ID: 7}, p)
	test.Equate(t, int(p.disconnected), 7)
}
