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

package session_test

import (
	"errors"
	"math"
	"testing"

	"github.com/shiftfeel/shiftfeel/haptics"
	"github.com/shiftfeel/shiftfeel/notifications"
	"github.com/shiftfeel/shiftfeel/pad"
	"github.com/shiftfeel/shiftfeel/session"
	"github.com/shiftfeel/shiftfeel/test"
	"github.com/shiftfeel/shiftfeel/userinput"
	"github.com/shiftfeel/shiftfeel/vehicle"
)

// fakeSystem stands in for the device subsystem. real hardware is
// non-deterministic and unavailable in CI.
type fakeSystem struct {
	devices []pad.Info

	// batches of events returned by successive calls to Pull(). once the
	// batches are exhausted Pull() returns a quit event so that Run() always
	// terminates
	queue [][]userinput.Event

	noRumble   bool
	rumbleErr  error
	rumbled    []haptics.Command
	rumbledFor []pad.ID
}

func (f *fakeSystem) Devices() []pad.Info {
	return f.devices
}

func (f *fakeSystem) Pull() []userinput.Event {
	if len(f.queue) == 0 {
		return []userinput.Event{userinput.EventQuit{}}
	}
	batch := f.queue[0]
	f.queue = f.queue[1:]
	return batch
}

func (f *fakeSystem) SupportsRumble(id pad.ID) bool {
	return !f.noRumble
}

func (f *fakeSystem) Rumble(id pad.ID, cmd haptics.Command) error {
	if f.rumbleErr != nil {
		return f.rumbleErr
	}
	f.rumbled = append(f.rumbled, cmd)
	f.rumbledFor = append(f.rumbledFor, id)
	return nil
}

type record struct {
	gears       []int
	intensities []float32
	notices     []notifications.Notice
}

func (r *record) Shift(gearNum int, intensity float32, downshift bool) {
	r.gears = append(r.gears, gearNum)
	r.intensities = append(r.intensities, intensity)
}

func (r *record) Notice(n notifications.Notice) {
	r.notices = append(r.notices, n)
}

func (r *record) sawNotice(n notifications.Notice) bool {
	for _, s := range r.notices {
		if s == n {
			return true
		}
	}
	return false
}

func TestDownshiftScenario(t *testing.T) {
	// torque 500 of 1000, downshift from the initial gear: intensity 0.65
	// and the gearbox drops to 2nd
	sys := &fakeSystem{}
	rec := &record{}
	s := session.NewSession(vehicle.New(500, 400), sys, rec)
	s.Track(1)

	s.Downshift()

	test.Equate(t, s.Gear(), 2)
	test.Equate(t, len(rec.gears), 1)
	test.Equate(t, rec.gears[0], 2)
	test.Equate(t, rec.intensities[0], float32(500)/1000.0*1.3)

	test.Equate(t, len(sys.rumbled), 1)
	test.Equate(t, int(sys.rumbledFor[0]), 1)
	test.Equate(t, sys.rumbled[0].Strong, uint16(math.Round(float64(rec.intensities[0])*65535)))
	test.Equate(t, sys.rumbled[0].Weak, uint16(math.Round(float64(rec.intensities[0])*0.7*65535)))
	test.Equate(t, sys.rumbled[0].Duration.Milliseconds(), int64(200))
	test.Equate(t, rec.sawNotice(notifications.NotifyRumbled), true)
}

func TestUpshiftBoundary(t *testing.T) {
	// torque 1200 of 1000, upshifting all the way: the three shifts to 6th
	// rumble at intensity 0.96, the fourth attempt produces a boundary
	// notice and nothing else
	sys := &fakeSystem{}
	rec := &record{}
	s := session.NewSession(vehicle.New(1200, 900), sys, rec)
	s.Track(1)

	s.Upshift()
	s.Upshift()
	s.Upshift()
	test.Equate(t, s.Gear(), 6)
	test.Equate(t, len(sys.rumbled), 3)
	test.Equate(t, rec.intensities[0], float32(1200)/1000.0*0.8)
	test.Equate(t, sys.rumbled[0].Duration.Milliseconds(), int64(150))

	s.Upshift()
	test.Equate(t, s.Gear(), 6)
	test.Equate(t, len(sys.rumbled), 3)
	test.Equate(t, rec.sawNotice(notifications.NotifyAtHighest), true)
}

func TestRumbleUnsupported(t *testing.T) {
	// the shift still happens, only the pulse is missing
	sys := &fakeSystem{noRumble: true}
	rec := &record{}
	s := session.NewSession(vehicle.New(300, 400), sys, rec)
	s.Track(1)

	s.Downshift()

	test.Equate(t, s.Gear(), 2)
	test.Equate(t, len(sys.rumbled), 0)
	test.Equate(t, rec.sawNotice(notifications.NotifyRumbleUnsupported), true)
	test.Equate(t, rec.sawNotice(notifications.NotifyRumbled), false)
}

func TestRumbleFailureSwallowed(t *testing.T) {
	sys := &fakeSystem{rumbleErr: errors.New("device revoked")}
	rec := &record{}
	s := session.NewSession(vehicle.New(300, 400), sys, rec)
	s.Track(1)

	s.Upshift()

	// the gear state advanced regardless of the actuator failure
	test.Equate(t, s.Gear(), 4)
	test.Equate(t, rec.sawNotice(notifications.NotifyRumbled), false)
}

func TestDisconnectSuppressesInput(t *testing.T) {
	sys := &fakeSystem{}
	rec := &record{}
	s := session.NewSession(vehicle.New(300, 400), sys, rec)
	s.Track(1)

	s.Disconnected(1)
	test.Equate(t, rec.sawNotice(notifications.NotifyDisconnected), true)

	// with no tracked controller, shift input is a no-op
	s.Downshift()
	s.Upshift()
	test.Equate(t, s.Gear(), 3)
	test.Equate(t, len(sys.rumbled), 0)

	// a new connection restores shifting
	s.Connected(2, "new pad")
	test.Equate(t, rec.sawNotice(notifications.NotifyConnected), true)
	s.Downshift()
	test.Equate(t, s.Gear(), 2)
	test.Equate(t, len(sys.rumbled), 1)
	test.Equate(t, int(sys.rumbledFor[0]), 2)
}

func TestDisconnectOfUntrackedController(t *testing.T) {
	sys := &fakeSystem{}
	rec := &record{}
	s := session.NewSession(vehicle.New(300, 400), sys, rec)
	s.Track(1)

	// some other controller going away does not affect the session
	s.Disconnected(99)
	test.Equate(t, rec.sawNotice(notifications.NotifyDisconnected), false)
	s.Downshift()
	test.Equate(t, s.Gear(), 2)
}

func TestConnectedReplayOfTrackedController(t *testing.T) {
	sys := &fakeSystem{}
	rec := &record{}
	s := session.NewSession(vehicle.New(300, 400), sys, rec)
	s.Track(1)

	// a connection event for the controller we are already tracking, as
	// replayed by the device subsystem right after startup, announces
	// nothing
	s.Connected(1, "pad")
	test.Equate(t, rec.sawNotice(notifications.NotifyConnected), false)

	// and the controller is still being tracked
	s.Downshift()
	test.Equate(t, s.Gear(), 2)
	test.Equate(t, len(sys.rumbled), 1)
}

func TestRunLoop(t *testing.T) {
	// a scripted run: downshift, upshift twice, then the exit control
	sys := &fakeSystem{
		queue: [][]userinput.Event{
			{userinput.EventGamepadButton{ID: 1, Button: userinput.GamepadButtonX, Down: true}},
			{
				userinput.EventGamepadButton{ID: 1, Button: userinput.GamepadButtonB, Down: true},
				userinput.EventGamepadButton{ID: 1, Button: userinput.GamepadButtonB, Down: true},
			},
			{userinput.EventGamepadButton{ID: 1, Button: userinput.GamepadButtonStart, Down: true}},
		},
	}
	rec := &record{}
	s := session.NewSession(vehicle.New(300, 400), sys, rec)
	s.Track(1)

	// Run() returns on the exit control press
	s.Run()

	test.Equate(t, s.Gear(), 4)
	test.Equate(t, len(sys.rumbled), 3)
}

func TestRunLoopMidSessionReconnect(t *testing.T) {
	sys := &fakeSystem{
		queue: [][]userinput.Event{
			{userinput.EventDisconnected{ID: 1}},
			{userinput.EventGamepadButton{ID: 1, Button: userinput.GamepadButtonX, Down: true}},
			{userinput.EventConnected{ID: 2, Name: "pad"}},
			{userinput.EventGamepadButton{ID: 2, Button: userinput.GamepadButtonX, Down: true}},
		},
	}
	rec := &record{}
	s := session.NewSession(vehicle.New(300, 400), sys, rec)
	s.Track(1)

	s.Run()

	// only the shift after reconnection counted
	test.Equate(t, s.Gear(), 2)
	test.Equate(t, len(sys.rumbled), 1)
	test.Equate(t, int(sys.rumbledFor[0]), 2)
}
