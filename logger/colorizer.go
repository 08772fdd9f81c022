// This file is part of k9.
//
// k9 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// k9 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with k9.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"io"

	"github.com/fatih/color"
)

// Colorizer applies basic coloring rules to logging output.
type Colorizer struct {
	out    io.Writer
	colors map[Level]*color.Color
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out: out,
		colors: map[Level]*color.Color{
			Trace:   color.New(color.Faint),
			Info:    color.New(color.Reset),
			Warning: color.New(color.FgYellow),
			Error:   color.New(color.FgRed, color.Bold),
		},
	}
}

// Write implements the io.Writer interface. Output is written without any
// coloring.
func (c Colorizer) Write(p []byte) (n int, err error) {
	return c.out.Write(p)
}

// WriteLevel implements the LevelWriter interface.
func (c Colorizer) WriteLevel(level Level, p []byte) (n int, err error) {
	col, ok := c.colors[level]
	if !ok {
		return c.out.Write(p)
	}
	_, err = col.Fprint(c.out, string(p))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
