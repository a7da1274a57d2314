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

package session

import (
	"time"

	"github.com/shiftfeel/shiftfeel/gear"
	"github.com/shiftfeel/shiftfeel/haptics"
	"github.com/shiftfeel/shiftfeel/logger"
	"github.com/shiftfeel/shiftfeel/notifications"
	"github.com/shiftfeel/shiftfeel/pad"
	"github.com/shiftfeel/shiftfeel/userinput"
	"github.com/shiftfeel/shiftfeel/vehicle"
)

// System is the capability interface onto the device subsystem. The sdlpad
// package provides the hardware implementation. Tests use a fake.
type System interface {
	// Devices enumerates the currently connected controllers.
	Devices() []pad.Info

	// Pull drains and returns all currently queued device events. It must
	// not block waiting for new events.
	Pull() []userinput.Event

	// SupportsRumble reports whether the controller has force feedback.
	SupportsRumble(id pad.ID) bool

	// Rumble is fire-and-forget and may silently fail on the hardware side.
	Rumble(id pad.ID, cmd haptics.Command) error
}

// Monitor receives everything the user should be shown during a session.
type Monitor interface {
	// Shift reports a successful gear transition and the intensity of the
	// accompanying pulse.
	Shift(gearNum int, intensity float32, downshift bool)

	// Notice reports an event that carries no additional data.
	Notice(n notifications.Notice)
}

// time to sleep between polls of the device subsystem. long enough to bound
// idle CPU usage, short enough not to materially delay response to input.
const pollPeriod = 10 * time.Millisecond

// Session ties controller input to the gearbox and the force feedback
// actuators. One Session per process run.
type Session struct {
	veh     vehicle.Vehicle
	box     *gear.Box
	system  System
	monitor Monitor

	// the controller we are currently reading from and rumbling. NoID means
	// shift input is ignored until a controller (re)connects
	active pad.ID
}

// NewSession is the preferred method of initialisation for the Session type.
// The session begins with no tracked controller. Use Track() for the
// controller found at startup.
func NewSession(veh vehicle.Vehicle, system System, monitor Monitor) *Session {
	return &Session{
		veh:     veh,
		box:     gear.NewBox(),
		system:  system,
		monitor: monitor,
		active:  pad.NoID,
	}
}

// Track sets the controller the session reads from and rumbles.
func (s *Session) Track(id pad.ID) {
	s.active = id
}

// Gear returns the currently selected gear.
func (s *Session) Gear() int {
	return s.box.Current()
}

// Run is the dispatch loop. It drains all queued device events, routes them,
// sleeps briefly and polls again. It returns when the exit control is
// pressed or the device subsystem asks the application to end.
func (s *Session) Run() {
	for {
		for _, ev := range s.system.Pull() {
			if userinput.HandleUserInput(ev, s) {
				return
			}
		}
		time.Sleep(pollPeriod)
	}
}

// Downshift implements the userinput.HandleInput interface.
func (s *Session) Downshift() {
	s.shift(true)
}

// Upshift implements the userinput.HandleInput interface.
func (s *Session) Upshift() {
	s.shift(false)
}

// Connected implements the userinput.HandleInput interface. The newly
// arrived controller always becomes the tracked controller.
func (s *Session) Connected(id pad.ID, name string) {
	// some device subsystems replay a connection event for the controller
	// found at startup. we're already tracking it so there is nothing to
	// announce
	if id == s.active {
		return
	}

	s.active = id
	logger.Logf("session", "tracking %s", name)
	s.monitor.Notice(notifications.NotifyConnected)
}

// Disconnected implements the userinput.HandleInput interface. Shift input
// is ignored from here until a new connection arrives.
func (s *Session) Disconnected(id pad.ID) {
	if id != s.active {
		return
	}
	s.active = pad.NoID
	s.monitor.Notice(notifications.NotifyDisconnected)
}

func (s *Session) shift(downshift bool) {
	if s.active == pad.NoID {
		return
	}

	var res gear.Result
	if downshift {
		res = s.box.Downshift()
	} else {
		res = s.box.Upshift()
	}

	if res != gear.Shifted {
		if downshift {
			s.monitor.Notice(notifications.NotifyAtLowest)
		} else {
			s.monitor.Notice(notifications.NotifyAtHighest)
		}
		return
	}

	intensity := haptics.Intensity(s.veh.Torque, vehicle.MaxTorque, downshift)
	s.monitor.Shift(s.box.Current(), intensity, downshift)

	if !s.system.SupportsRumble(s.active) {
		s.monitor.Notice(notifications.NotifyRumbleUnsupported)
		return
	}

	// rumble is cosmetic. a failed actuator call (device revoked mid-call,
	// etc) never interrupts the session
	if err := s.system.Rumble(s.active, haptics.NewCommand(intensity, downshift)); err != nil {
		logger.Logf("session", "rumble: %s", err.Error())
		return
	}

	s.monitor.Notice(notifications.NotifyRumbled)
}
