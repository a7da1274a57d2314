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

// Package ansi defines the ANSI control codes used by the console output.
package ansi

import "fmt"

// ansi color.
const (
	colRed    = 1
	colGreen  = 2
	colYellow = 3
	colCyan   = 6
)

const csi = "\033["

// pen target 3 is normal intensity, target 9 is bright.
func pen(col int) string {
	return fmt.Sprintf("%s3%dm", csi, col)
}

func brightPen(col int) string {
	return fmt.Sprintf("%s9%dm", csi, col)
}

// NormalPen is the CSI sequence for regular text.
var NormalPen = csi + "0m"

// Pens is the table of colors to be used for text.
var Pens = map[string]string{
	"red":    brightPen(colRed),
	"green":  brightPen(colGreen),
	"yellow": brightPen(colYellow),
	"cyan":   brightPen(colCyan),
}

// DimPens is the table of muted colors to be used for text.
var DimPens = map[string]string{
	"red":    pen(colRed),
	"green":  pen(colGreen),
	"yellow": pen(colYellow),
	"cyan":   pen(colCyan),
}
