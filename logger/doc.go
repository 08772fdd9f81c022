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

// Package logger is the central log for the application. Entries have a tag,
// a detail and a severity Level. Consecutive identical entries are folded
// into a single entry with a repeat count.
//
// The package level functions (Log(), Logf(), Warnf(), Errorf(), Tracef() and so
// on) all use the central logger. Other Logger instances can be created with
// NewLogger() but that's only useful for testing.
//
// Every logging function takes a Permission as the first argument. Use Allow
// when an entry should always be made. The console uses a Permission derived
// from its debug-trace setting to control whether trace entries are made.
//
// Entries can be echoed to an io.Writer with SetEcho(). If the writer also
// implements the LevelWriter interface, the entry's severity is passed along
// with the text. The Colorizer type is a LevelWriter that colours output by
// severity.
//
// Entries can also be written to a rotating log file with SetFile().
package logger
