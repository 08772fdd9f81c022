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
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Entry represents a single line/entry in the log
type Entry struct {
	// Index is unique to the entry for the lifetime of the Logger. It is not
	// an index into any slice of entries.
	Index     int
	Timestamp time.Time
	Level     Level
	Tag       string
	Detail    string
	Repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// LevelWriter is implemented by echo writers that need to know the severity
// of the entry being written.
type LevelWriter interface {
	WriteLevel(level Level, p []byte) (n int, err error)
}

// Logger is the log implementation used by the central logger.
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry
	nextIndex  int

	// index of the next entry to be written by writeRecent()
	recentIndex int

	echo       io.Writer
	echoRecent bool

	file *lumberjack.Logger
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// normalise converts the detail argument of a logging function.
func normalise(d any) string {
	switch d := d.(type) {
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	case string:
		return d
	}
	return fmt.Sprintf("%v", d)
}

func (l *Logger) add(level Level, tag string, det string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	det = strings.ReplaceAll(det, "\n", " ")

	var e *Entry
	if n := len(l.entries); n > 0 {
		last := &l.entries[n-1]
		if last.Tag == tag && last.Detail == det && last.Level == level {
			e = last
			e.Repeated++
			e.Timestamp = time.Now()
		}
	}

	if e == nil {
		l.entries = append(l.entries, Entry{
			Index:     l.nextIndex,
			Timestamp: time.Now(),
			Level:     level,
			Tag:       tag,
			Detail:    det,
		})
		l.nextIndex++
		e = &l.entries[len(l.entries)-1]
	}

	if l.file != nil {
		fmt.Fprintf(l.file, "%s %-5s %s", e.Timestamp.Format(time.RFC3339), e.Level, e.String())
	}

	if l.echo != nil {
		if l.echoRecent {
			l.writeRecent(l.echo)
		} else {
			writeEntry(l.echo, e)
		}
	}

	// maintain maximum length. the entry pointer is invalid after this point
	if len(l.entries) > l.maxEntries {
		l.entries = append(l.entries[:0], l.entries[len(l.entries)-l.maxEntries:]...)
	}
}

func writeEntry(output io.Writer, e *Entry) {
	if lw, ok := output.(LevelWriter); ok {
		_, _ = lw.WriteLevel(e.Level, []byte(e.String()))
		return
	}
	_, _ = io.WriteString(output, e.String())
}

// Log adds an entry of severity Info.
func (l *Logger) Log(perm Permission, tag string, d any) {
	if perm == Allow || perm.AllowLogging() {
		l.add(Info, tag, normalise(d))
	}
}

// Logf adds a formatted entry of severity Info.
func (l *Logger) Logf(perm Permission, tag string, format string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		l.add(Info, tag, fmt.Sprintf(format, args...))
	}
}

// Warn adds an entry of severity Warning.
func (l *Logger) Warn(perm Permission, tag string, d any) {
	if perm == Allow || perm.AllowLogging() {
		l.add(Warning, tag, normalise(d))
	}
}

// Warnf adds a formatted entry of severity Warning.
func (l *Logger) Warnf(perm Permission, tag string, format string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		l.add(Warning, tag, fmt.Sprintf(format, args...))
	}
}

// Error adds an entry of severity Error.
func (l *Logger) Error(perm Permission, tag string, d any) {
	if perm == Allow || perm.AllowLogging() {
		l.add(Error, tag, normalise(d))
	}
}

// Errorf adds a formatted entry of severity Error.
func (l *Logger) Errorf(perm Permission, tag string, format string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		l.add(Error, tag, fmt.Sprintf(format, args...))
	}
}

// Trace adds an entry of severity Trace.
func (l *Logger) Trace(perm Permission, tag string, d any) {
	if perm == Allow || perm.AllowLogging() {
		l.add(Trace, tag, normalise(d))
	}
}

// Tracef adds a formatted entry of severity Trace.
func (l *Logger) Tracef(perm Permission, tag string, format string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		l.add(Trace, tag, fmt.Sprintf(format, args...))
	}
}

// Clear all entries.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
	l.recentIndex = l.nextIndex
}

// Write all entries to io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for i := range l.entries {
		writeEntry(output, &l.entries[i])
	}
}

// WriteRecent writes the entries added since the previous call to
// WriteRecent.
func (l *Logger) WriteRecent(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.writeRecent(output)
}

func (l *Logger) writeRecent(output io.Writer) {
	for i := range l.entries {
		if l.entries[i].Index >= l.recentIndex {
			writeEntry(output, &l.entries[i])
		}
	}
	l.recentIndex = l.nextIndex
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	number = max(0, min(number, len(l.entries)))
	for i := len(l.entries) - number; i < len(l.entries); i++ {
		writeEntry(output, &l.entries[i])
	}
}

// Copy returns a copy of all entries.
func (l *Logger) Copy() []Entry {
	l.crit.Lock()
	defer l.crit.Unlock()
	c := make([]Entry, len(l.entries))
	copy(c, l.entries)
	return c
}

// SetEcho prints new entries to io.Writer. If writeRecent is true then every
// entry since the last call to WriteRecent() is written when a new entry is
// added. A nil writer turns echoing off.
func (l *Logger) SetEcho(output io.Writer, writeRecent bool) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
	l.echoRecent = writeRecent
}

// SetFile writes new entries to a rotating log file. Any previous log file is
// closed. An empty filename turns file logging off.
func (l *Logger) SetFile(filename string, maxSizeMB int, maxBackups int) error {
	l.crit.Lock()
	defer l.crit.Unlock()

	if l.file != nil {
		if err := l.file.Close(); err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		l.file = nil
	}

	if filename == "" {
		return nil
	}

	l.file = &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}

	return nil
}
