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

package terminal

import (
	"strings"

	"github.com/k9engine/k9/logger"
)

// LogEcho forwards log entries to a terminal. It implements the io.Writer
// and logger.LevelWriter interfaces and is intended for use with the
// logger.SetEcho() function.
type LogEcho struct {
	out Output
}

// NewLogEcho is the preferred method of initialisation for the LogEcho type.
func NewLogEcho(out Output) *LogEcho {
	return &LogEcho{out: out}
}

// Write implements the io.Writer interface. Each line is printed with
// StyleLog.
func (e *LogEcho) Write(p []byte) (int, error) {
	return e.WriteLevel(logger.Info, p)
}

// WriteLevel implements the logger.LevelWriter interface.
func (e *LogEcho) WriteLevel(level logger.Level, p []byte) (int, error) {
	style := StyleLog
	switch level {
	case logger.Trace:
		style = StyleTrace
	case logger.Warning:
		style = StyleWarning
	case logger.Error:
		style = StyleError
	}

	for _, s := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		e.out.TermPrintLine(style, s)
	}

	return len(p), nil
}
