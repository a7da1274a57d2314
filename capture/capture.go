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

// Package capture records every rumble pulse of a session as audio, written
// to disk as a WAV file when the session ends. Listening to (or plotting)
// the file is a cheap way of inspecting how shift feel scales with a torque
// curve when no force feedback hardware is to hand.
//
// Note that sample data is buffered in memory in its entirety and written to
// disk on program end. It is therefore only suitable for testing purposes.
//
// The System type wraps the real device system, so a capturing session is
// wired up by decoration:
//
//	sys := capture.NewSystem(realSystem, "pulses.wav")
//	sess := session.NewSession(veh, sys, monitor)
package capture

import (
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/shiftfeel/shiftfeel/curated"
	"github.com/shiftfeel/shiftfeel/haptics"
	"github.com/shiftfeel/shiftfeel/logger"
	"github.com/shiftfeel/shiftfeel/pad"
	"github.com/shiftfeel/shiftfeel/session"
)

const (
	sampleRate = 44100
	bitDepth   = 16

	// the motors are modelled as sine sources. the strong (low frequency)
	// motor dominates the mix, as it does in the hand
	strongMotorFreq = 60.0
	weakMotorFreq   = 180.0
	strongMotorMix  = 0.8
	weakMotorMix    = 0.2

	// silence inserted after each pulse so that pulses are distinguishable
	gapDuration = 50 // milliseconds
)

// System wraps a session.System and records every rumble command that passes
// through it.
type System struct {
	session.System

	filename string
	buffer   []int
}

// NewSystem is the preferred method of initialisation for the System type.
func NewSystem(wrap session.System, filename string) *System {
	return &System{
		System:   wrap,
		filename: filename,
		buffer:   make([]int, 0),
	}
}

// Rumble implements the session.System interface. The command is recorded
// before being passed on to the wrapped system.
func (c *System) Rumble(id pad.ID, cmd haptics.Command) error {
	c.record(cmd)
	return c.System.Rumble(id, cmd)
}

func (c *System) record(cmd haptics.Command) {
	strong := float64(cmd.Strong) / haptics.MaxMagnitude
	weak := float64(cmd.Weak) / haptics.MaxMagnitude

	n := int(sampleRate * cmd.Duration.Seconds())
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		v := strongMotorMix*strong*math.Sin(2*math.Pi*strongMotorFreq*t) +
			weakMotorMix*weak*math.Sin(2*math.Pi*weakMotorFreq*t)
		c.buffer = append(c.buffer, int(v*math.MaxInt16))
	}

	for i := 0; i < sampleRate*gapDuration/1000; i++ {
		c.buffer = append(c.buffer, 0)
	}
}

// Len returns the number of samples recorded so far.
func (c *System) Len() int {
	return len(c.buffer)
}

// End writes the recorded pulses to disk. Call once, after the session
// loop has finished.
func (c *System) End() (rerr error) {
	f, err := os.Create(c.filename)
	if err != nil {
		return curated.Errorf("capture: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("capture: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           c.buffer,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("capture: %v", err)
	}

	logger.Logf("capture", "%d samples written to %s", len(c.buffer), c.filename)

	if err := enc.Close(); err != nil {
		return curated.Errorf("capture: %v", err)
	}

	return nil
}
