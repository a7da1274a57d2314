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

package capture_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shiftfeel/shiftfeel/capture"
	"github.com/shiftfeel/shiftfeel/haptics"
	"github.com/shiftfeel/shiftfeel/pad"
	"github.com/shiftfeel/shiftfeel/test"
	"github.com/shiftfeel/shiftfeel/userinput"
)

// minimal stand-in for the wrapped device system.
type nullSystem struct {
	rumbles int
}

func (n *nullSystem) Devices() []pad.Info                       { return nil }
func (n *nullSystem) Pull() []userinput.Event                   { return nil }
func (n *nullSystem) SupportsRumble(id pad.ID) bool             { return true }
func (n *nullSystem) Rumble(id pad.ID, c haptics.Command) error { n.rumbles++; return nil }

func TestRecording(t *testing.T) {
	inner := &nullSystem{}
	c := capture.NewSystem(inner, filepath.Join(t.TempDir(), "pulses.wav"))

	// commands pass through to the wrapped system
	err := c.Rumble(1, haptics.Command{Strong: 30000, Weak: 21000, Duration: 200 * time.Millisecond})
	test.ExpectedSuccess(t, err)
	test.Equate(t, inner.rumbles, 1)

	// 200ms of pulse plus 50ms of gap at 44100Hz
	test.Equate(t, c.Len(), 44100/5+44100/20)
}

func TestEnd(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "pulses.wav")
	c := capture.NewSystem(&nullSystem{}, filename)

	_ = c.Rumble(1, haptics.NewCommand(0.65, true))
	_ = c.Rumble(1, haptics.NewCommand(0.24, false))

	test.ExpectedSuccess(t, c.End())

	// the file must exist and have more than a bare header in it
	fi, err := os.Stat(filename)
	test.ExpectedSuccess(t, err)
	if fi.Size() <= 44 {
		t.Errorf("wav file too small (%d bytes)", fi.Size())
	}
}
