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

package main

import (
	"flag"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/shiftfeel/shiftfeel/capture"
	"github.com/shiftfeel/shiftfeel/console"
	"github.com/shiftfeel/shiftfeel/gear"
	"github.com/shiftfeel/shiftfeel/logger"
	"github.com/shiftfeel/shiftfeel/pad"
	"github.com/shiftfeel/shiftfeel/pad/sdlpad"
	"github.com/shiftfeel/shiftfeel/session"
	"github.com/shiftfeel/shiftfeel/statsview"
	"github.com/shiftfeel/shiftfeel/vehicle"
)

func main() {
	os.Exit(launch())
}

// launch is separate from main() so that deferred functions run before the
// call to os.Exit().
func launch() int {
	torque := flag.Float64("torque", 0, "vehicle torque in lb-ft. skips the prompt when given together with -hp")
	horsepower := flag.Float64("hp", 0, "vehicle horsepower. skips the prompt when given together with -torque")
	logEcho := flag.Bool("log", false, "echo log entries to stderr as they happen")
	wavFile := flag.String("wav", "", "record rumble pulses to the named WAV file")
	dumpFile := flag.String("dump", "", "write session object graph to the named file (graphviz dot format)")
	stats := flag.Bool("statsview", false, "run the statsview server (requires the statsview build tag)")
	flag.Parse()

	if *logEcho {
		logger.SetEcho(os.Stderr)
	}

	term := console.NewConsole(os.Stdin, os.Stdout)
	term.Banner()

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			logger.Log("statsview", "not compiled in (build with the statsview tag)")
		}
	}

	var veh vehicle.Vehicle
	if *torque > 0 && *horsepower > 0 {
		veh = vehicle.New(float32(*torque), float32(*horsepower))
	} else {
		veh = term.PromptVehicle(vehicle.DefaultTorque, vehicle.DefaultHorsepower)
	}
	term.Status(veh, gear.Initial)

	sys, err := sdlpad.NewSystem()
	if err != nil {
		term.Error(err)
		return 1
	}
	defer sys.Destroy()

	dev, ok := selectDevice(sys, term)
	if !ok {
		term.WaitAnyKey()
		return 0
	}

	// the device system the session sees. the capture decorator slots in
	// between when pulse recording has been asked for
	var driver session.System = sys

	var rec *capture.System
	if *wavFile != "" {
		rec = capture.NewSystem(sys, *wavFile)
		driver = rec
	}

	sess := session.NewSession(veh, driver, term)
	sess.Track(dev.ID)

	if *dumpFile != "" {
		dumpGraph(*dumpFile, sess)
	}

	term.Controls()
	term.Ready()

	sess.Run()

	if rec != nil {
		if err := rec.End(); err != nil {
			logger.Logf("capture", "%s", err.Error())
		}
	}

	term.Goodbye()

	return 0
}

// selectDevice picks the controller the session will track, reporting the
// outcome through the console. The ok value is false when no controller is
// connected, in which case the session must not start.
func selectDevice(sys session.System, term *console.Console) (dev pad.Info, ok bool) {
	devices := sys.Devices()
	if len(devices) == 0 {
		term.NoDevice()
		return pad.Info{ID: pad.NoID}, false
	}
	term.FoundDevice(devices[0].Name)
	return devices[0], true
}

// dumpGraph writes the object graph of the session to file. Strictly a
// debugging aid.
func dumpGraph(filename string, sess *session.Session) {
	f, err := os.Create(filename)
	if err != nil {
		logger.Logf("dump", "%s", err.Error())
		return
	}
	defer f.Close()

	memviz.Map(f, sess)
	logger.Logf("dump", "session graph written to %s", filename)
}
