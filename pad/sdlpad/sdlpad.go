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

package sdlpad

import (
	"runtime"
	"sort"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/shiftfeel/shiftfeel/curated"
	"github.com/shiftfeel/shiftfeel/haptics"
	"github.com/shiftfeel/shiftfeel/logger"
	"github.com/shiftfeel/shiftfeel/pad"
	"github.com/shiftfeel/shiftfeel/userinput"
)

// System is the SDL implementation of the session.System interface. One
// System per process. All functions must be called from the same goroutine
// that called NewSystem().
type System struct {
	pads map[pad.ID]*sdl.GameController
}

// NewSystem is the preferred method of initialisation for the System type.
// It initialises SDL and opens every gamepad that is already connected.
func NewSystem() (*System, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_EVENTS | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER | sdl.INIT_HAPTIC)
	if err != nil {
		return nil, curated.Errorf("sdlpad: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf("sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	sys := &System{
		pads: make(map[pad.ID]*sdl.GameController),
	}

	// add gamepads that are connected at startup
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			logger.Logf("sdl", "joystick %d is not a gamepad", i)
			continue
		}
		sys.open(i)
	}

	if len(sys.pads) == 0 {
		logger.Log("sdl", "no gamepads found")
	}

	return sys, nil
}

// open the gamepad at the given device index and start tracking it by its
// stable instance ID. returns NoID if the controller could not be opened.
// the fresh value is false if the controller was already being tracked, as
// happens when SDL replays device-added events for controllers opened during
// NewSystem().
func (sys *System) open(index int) (id pad.ID, fresh bool) {
	p := sdl.GameControllerOpen(index)
	if p == nil || !p.Attached() {
		return pad.NoID, false
	}

	id = pad.ID(p.Joystick().InstanceID())
	if _, ok := sys.pads[id]; ok {
		// opening an already open controller only bumps an SDL reference
		// count. undo it
		p.Close()
		return id, false
	}

	sys.pads[id] = p
	logger.Logf("sdl", "gamepad: %s", p.Joystick().Name())

	return id, true
}

// Destroy cleans up the resources.
func (sys *System) Destroy() {
	for _, p := range sys.pads {
		p.Close()
	}
	sys.pads = make(map[pad.ID]*sdl.GameController)
	sdl.Quit()
}

// Devices implements the session.System interface.
func (sys *System) Devices() []pad.Info {
	inf := make([]pad.Info, 0, len(sys.pads))
	for id, p := range sys.pads {
		inf = append(inf, pad.Info{ID: id, Name: p.Joystick().Name()})
	}

	// map iteration order is unstable. the session tracks the first entry so
	// enumeration must be deterministic
	sort.Slice(inf, func(i, j int) bool {
		return inf[i].ID < inf[j].ID
	})

	return inf
}

// Pull implements the session.System interface. It drains the SDL event
// queue, translating the events we care about and discarding the rest.
func (sys *System) Pull() []userinput.Event {
	var events []userinput.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, userinput.EventQuit{})

		case *sdl.ControllerButtonEvent:
			if ev.Type != sdl.CONTROLLERBUTTONDOWN {
				continue
			}

			button := userinput.GamepadButtonNone
			switch int(ev.Button) {
			case int(sdl.CONTROLLER_BUTTON_X):
				button = userinput.GamepadButtonX
			case int(sdl.CONTROLLER_BUTTON_B):
				button = userinput.GamepadButtonB
			case int(sdl.CONTROLLER_BUTTON_START):
				button = userinput.GamepadButtonStart
			}

			if button != userinput.GamepadButtonNone {
				events = append(events, userinput.EventGamepadButton{
					ID:     pad.ID(ev.Which),
					Button: button,
					Down:   true,
				})
			}

		case *sdl.ControllerDeviceEvent:
			switch ev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				// for device-added events Which is a device index, not an
				// instance ID
				id, fresh := sys.open(int(ev.Which))
				if !fresh {
					continue
				}
				events = append(events, userinput.EventConnected{
					ID:   id,
					Name: sys.pads[id].Joystick().Name(),
				})

			case sdl.CONTROLLERDEVICEREMOVED:
				id := pad.ID(ev.Which)
				if p, ok := sys.pads[id]; ok {
					p.Close()
					delete(sys.pads, id)
				}
				events = append(events, userinput.EventDisconnected{ID: id})
			}
		}
	}

	return events
}

// SupportsRumble implements the session.System interface.
func (sys *System) SupportsRumble(id pad.ID) bool {
	p, ok := sys.pads[id]
	if !ok {
		return false
	}

	haptic, err := sdl.JoystickIsHaptic(p.Joystick())
	if err != nil {
		logger.Logf("sdl", "haptic query: %s", err.Error())
		return false
	}

	return haptic
}

// Rumble implements the session.System interface. The strong magnitude
// drives the low frequency (large) motor and the weak magnitude the high
// frequency (small) motor, as is conventional for dual motor gamepads.
func (sys *System) Rumble(id pad.ID, cmd haptics.Command) error {
	p, ok := sys.pads[id]
	if !ok {
		return curated.Errorf("sdlpad: %v", "rumble on unknown device")
	}

	err := p.Rumble(cmd.Strong, cmd.Weak, uint32(cmd.Duration.Milliseconds()))
	if err != nil {
		return curated.Errorf("sdlpad: %v", err)
	}

	return nil
}
