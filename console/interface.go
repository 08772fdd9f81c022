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

package console

import (
	"maps"
	"slices"
)

// Interface is the handle passed to every command callback. It gives access
// to the auxiliary windows of the user interface. Windows are identified by
// a string id.
//
// Each function returns false if the id is not known.
type Interface interface {
	OpenWindow(id string) bool
	CloseWindow(id string) bool
	SetWindowOpen(id string, open bool) bool
}

// Windows is an implementation of Interface that keeps the open/closed state
// of a fixed set of windows. It is useful when there is no graphical user
// interface, for example when commands are entered at a terminal.
type Windows struct {
	open map[string]bool
}

// NewWindows returns a Windows instance that knows about the list of ids.
// All windows are closed to begin with.
func NewWindows(ids ...string) *Windows {
	w := &Windows{
		open: make(map[string]bool),
	}
	for _, id := range ids {
		w.open[id] = false
	}
	return w
}

// OpenWindow implements the Interface interface.
func (w *Windows) OpenWindow(id string) bool {
	return w.SetWindowOpen(id, true)
}

// CloseWindow implements the Interface interface.
func (w *Windows) CloseWindow(id string) bool {
	return w.SetWindowOpen(id, false)
}

// SetWindowOpen implements the Interface interface.
func (w *Windows) SetWindowOpen(id string, open bool) bool {
	if _, ok := w.open[id]; !ok {
		return false
	}
	w.open[id] = open
	return true
}

// IsOpen returns true if the window is open. Unknown windows are never open.
func (w *Windows) IsOpen(id string) bool {
	return w.open[id]
}

// IDs returns the window ids in alphabetical order.
func (w *Windows) IDs() []string {
	return slices.Sorted(maps.Keys(w.open))
}
