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
	"bufio"
	"fmt"
	"io"

	"github.com/shiftfeel/shiftfeel/console/ansi"
	"github.com/shiftfeel/shiftfeel/notifications"
	"github.com/shiftfeel/shiftfeel/vehicle"
	"github.com/shiftfeel/shiftfeel/version"
)

// Console is the text interface of the simulator. All session output goes
// through it and the two startup prompts read from it. It carries no state
// beyond the streams it talks to.
type Console struct {
	input  *bufio.Reader
	output io.Writer

	// ansi pens are suppressed when Plain is true
	Plain bool
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(input io.Reader, output io.Writer) *Console {
	return &Console{
		input:  bufio.NewReader(input),
		output: output,
	}
}

func (c *Console) print(s string) {
	io.WriteString(c.output, s)
}

func (c *Console) printf(pattern string, args ...interface{}) {
	fmt.Fprintf(c.output, pattern, args...)
}

func (c *Console) pen(name string) string {
	if c.Plain {
		return ""
	}
	return ansi.Pens[name]
}

func (c *Console) dimPen(name string) string {
	if c.Plain {
		return ""
	}
	return ansi.DimPens[name]
}

func (c *Console) normal() string {
	if c.Plain {
		return ""
	}
	return ansi.NormalPen
}

// readLine prompts and returns one line of input. an input error returns the
// empty string, which every caller treats as "use the default".
func (c *Console) readLine(prompt string) string {
	c.print(prompt)
	s, err := c.input.ReadString('\n')
	if err != nil && s == "" {
		return ""
	}
	return s
}

// Banner prints the application masthead.
func (c *Console) Banner() {
	c.printf("%s%s: sequential gearbox haptic feedback%s\n", c.pen("cyan"), version.ApplicationName, c.normal())
	c.printf("%srevision: %s%s\n\n", c.dimPen("cyan"), version.Revision, c.normal())
}

// PromptVehicle gathers the vehicle parameters, falling back to the
// preferred values on unparsable input.
func (c *Console) PromptVehicle(torquePreferred float32, horsepowerPreferred float32) vehicle.Vehicle {
	torque := vehicle.Parse(
		c.readLine(fmt.Sprintf("Enter car torque (lb-ft) [%.0f]: ", torquePreferred)),
		torquePreferred)
	horsepower := vehicle.Parse(
		c.readLine(fmt.Sprintf("Enter car horsepower [%.0f]: ", horsepowerPreferred)),
		horsepowerPreferred)
	return vehicle.New(torque, horsepower)
}

// Status prints the current vehicle and gearbox state.
func (c *Console) Status(veh vehicle.Vehicle, gearNum int) {
	c.print("\n+---------------------------------+\n")
	c.print("|          current status         |\n")
	c.print("+---------------------------------+\n")
	c.printf("| gear        %-4d                |\n", gearNum)
	c.printf("| torque      %-7.0f lb-ft       |\n", veh.Torque)
	c.printf("| horsepower  %-7.0f HP          |\n", veh.Horsepower)
	c.print("+---------------------------------+\n")
}

// Controls prints the button mapping.
func (c *Console) Controls() {
	c.print("\n+---------------------------------+\n")
	c.print("|             controls            |\n")
	c.print("+---------------------------------+\n")
	c.print("| X button    downshift (strong)  |\n")
	c.print("| B button    upshift (light)     |\n")
	c.print("| start       exit                |\n")
	c.print("+---------------------------------+\n")
}

// Ready announces that the dispatch loop is about to start.
func (c *Console) Ready() {
	c.printf("\n%sready. start shifting%s\n\n", c.pen("green"), c.normal())
}

// FoundDevice reports the controller found at startup.
func (c *Console) FoundDevice(name string) {
	c.printf("%sgamepad found: %s%s\n", c.pen("green"), name, c.normal())
}

// NoDevice reports the recognised no-controller startup outcome.
func (c *Console) NoDevice() {
	c.printf("%sno gamepad detected. connect a gamepad and restart%s\n", c.pen("yellow"), c.normal())
}

// Goodbye is printed on a user-initiated exit.
func (c *Console) Goodbye() {
	c.print("\nexiting\n")
}

// Error reports a fatal startup condition.
func (c *Console) Error(err error) {
	c.printf("%serror: %s%s\n", c.pen("red"), err.Error(), c.normal())
}

// Shift implements the session.Monitor interface.
func (c *Console) Shift(gearNum int, intensity float32, downshift bool) {
	if downshift {
		c.printf("\n%sDOWNSHIFT to gear %d%s\n", c.pen("cyan"), gearNum, c.normal())
	} else {
		c.printf("\n%sUPSHIFT to gear %d%s\n", c.pen("cyan"), gearNum, c.normal())
	}
	c.printf("   rumble intensity: %.1f%%\n", intensity*100.0)
}

// Notice implements the session.Monitor interface.
func (c *Console) Notice(n notifications.Notice) {
	switch n {
	case notifications.NotifyAtLowest:
		c.printf("\n%salready in first gear%s\n", c.dimPen("yellow"), c.normal())
	case notifications.NotifyAtHighest:
		c.printf("\n%salready in highest gear%s\n", c.dimPen("yellow"), c.normal())
	case notifications.NotifyRumbleUnsupported:
		c.printf("   %srumble not supported on this gamepad%s\n", c.dimPen("yellow"), c.normal())
	case notifications.NotifyRumbled:
		c.print("   rumble triggered\n")
	case notifications.NotifyConnected:
		c.printf("\n%sgamepad connected%s\n", c.pen("green"), c.normal())
	case notifications.NotifyDisconnected:
		c.printf("\n%sgamepad disconnected%s\n", c.pen("yellow"), c.normal())
	}
}
