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


package sdlimgui

import (
	"fmt"
	"maps"
	"slices"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/k9engine/k9/console"
	"github.com/k9engine/k9/logger"
)

// manager handles windows and menus in the debug interface. it is the
// console.Interface for the console being driven by the debug interface.
type manager struct {
	img *SdlImgui

	// the collection of managed windows in the system, indexed by window id
	windows map[string]window

	// ids of the windows that appear in the windows menu. record windows are
	// created on demand and never appear in the menu
	menu []string

	// copy of the log taken at the start of each frame
	entries []logger.Entry

	// the log has changed since the previous frame
	logDirty bool
}

func newManager(img *SdlImgui) *manager {
	return &manager{
		img:     img,
		windows: make(map[string]window),
	}
}

func (wm *manager) addDefaultWindows() {
	wm.addWindow(newWinConsole(wm.img), true)
	wm.addWindow(newWinLog(wm.img), true)
}

func (wm *manager) addWindow(w window, open bool) {
	wm.windows[w.id()] = w
	wm.menu = append(wm.menu, w.id())
	slices.Sort(wm.menu)
	w.setOpen(open)
}

func (wm *manager) destroy() {
	clear(wm.windows)
	wm.menu = wm.menu[:0]
}

// busy returns true if the debug interface should be redrawn at a faster
// rate than normal.
func (wm *manager) busy() bool {
	return wm.logDirty
}

func (wm *manager) draw() {
	wm.entries = logger.Copy()
	latest := -1
	if len(wm.entries) > 0 {
		latest = wm.entries[len(wm.entries)-1].Index
	}
	wm.logDirty = wm.img.polling.logChanged(latest)

	wm.drawMenu()

	for _, id := range slices.Sorted(maps.Keys(wm.windows)) {
		wm.windows[id].draw()
	}

	// record windows are forgotten once they have been closed
	for id, w := range wm.windows {
		if _, ok := w.(*winRecord); ok && !w.isOpen() {
			delete(wm.windows, id)
		}
	}
}

func (wm *manager) drawMenu() {
	if !imgui.BeginMainMenuBar() {
		return
	}

	if imgui.BeginMenu("Console") {
		trace := wm.img.con.DebugTrace()
		if imgui.MenuItemV("Debug trace", "", trace, true) {
			wm.issueCommand(fmt.Sprintf("%s %v", console.CmdDebugTrace, !trace))
		}
		if imgui.Selectable("Help") {
			wm.issueCommand(console.CmdHelp)
		}
		imgui.Separator()
		if imgui.Selectable("Quit") {
			wm.issueCommand(console.CmdQuit)
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu("Windows") {
		for _, id := range wm.menu {
			open := wm.windows[id].isOpen()
			if imgui.MenuItemV(id, "", open, true) {
				if open {
					wm.issueCommand(fmt.Sprintf(`%s "%s" --close`, console.CmdWindow, id))
				} else {
					wm.issueCommand(fmt.Sprintf(`%s "%s"`, console.CmdWindow, id))
				}
			}
		}
		imgui.EndMenu()
	}

	imgui.EndMainMenuBar()
}

// issueCommand runs a command line in the console in the same way as if it
// had been entered in the console window. errors are logged by the console.
func (wm *manager) issueCommand(line string) {
	_ = wm.img.con.Submit(line)
}

// OpenWindow implements the console.Interface interface.
func (wm *manager) OpenWindow(id string) bool {
	return wm.SetWindowOpen(id, true)
}

// CloseWindow implements the console.Interface interface.
func (wm *manager) CloseWindow(id string) bool {
	return wm.SetWindowOpen(id, false)
}

// SetWindowOpen implements the console.Interface interface. Record windows
// for entries in the log can be opened with the id of the record window even
// though they are not in the windows menu.
func (wm *manager) SetWindowOpen(id string, open bool) bool {
	if w, ok := wm.windows[id]; ok {
		w.setOpen(open)
		return true
	}

	index, ok := recordIndex(id)
	if !ok {
		return false
	}

	for _, e := range logger.Copy() {
		if e.Index == index {
			if open {
				wm.openRecord(e)
			}
			return true
		}
	}

	return false
}

// openRecord opens a record window for the log entry. if the window is
// already open then it is brought to the front.
func (wm *manager) openRecord(e logger.Entry) {
	id := recordID(e.Index)
	if w, ok := wm.windows[id]; ok {
		w.(*winRecord).focus = true
		return
	}
	w := newWinRecord(wm.img, e)
	w.setOpen(true)
	wm.windows[id] = w
}
