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
	"os"
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/k9engine/k9/console"
	"github.com/k9engine/k9/logger"
	"github.com/k9engine/k9/paths"
)

const winLogID = "Log"

type winLog struct {
	windowManagement
	img *SdlImgui

	// filter entries below this level
	level logger.Level
}

func newWinLog(img *SdlImgui) *winLog {
	return &winLog{
		img:   img,
		level: logger.Info,
	}
}

func (win *winLog) id() string {
	return winLogID
}

func (win *winLog) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 600, Y: 40}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 450, Y: 500}, imgui.ConditionFirstUseEver)

	imgui.PushStyleColor(imgui.StyleColorWindowBg, win.img.cols.LogBackground)
	imgui.BeginV(winLogID, &win.open, 0)
	imgui.PopStyleColor()

	showTrace := win.level == logger.Trace
	if imgui.Checkbox("Show trace", &showTrace) {
		if showTrace {
			win.level = logger.Trace
		} else {
			win.level = logger.Info
		}
	}

	entries := make([]logger.Entry, 0, len(win.img.wm.entries))
	for _, e := range win.img.wm.entries {
		if e.Level >= win.level {
			entries = append(entries, e)
		}
	}

	if imgui.BeginChildV("entries", imgui.Vec2{X: 0, Y: imguiRemainingWinHeight()}, false, 0) {
		// only draw elements that will be visible
		var clipper imgui.ListClipper
		clipper.Begin(len(entries))
		for clipper.Step() {
			for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
				e := entries[i]
				imgui.PushStyleColor(imgui.StyleColorText, win.img.cols.level(e.Level))
				if imgui.Selectable(fmt.Sprintf("%s##%d", strings.TrimSpace(e.String()), e.Index)) {
					win.img.wm.issueCommand(fmt.Sprintf(`%s "%s"`, console.CmdWindow, recordID(e.Index)))
				}
				imgui.PopStyleColor()
			}
		}

		// scroll to end if the log has a new entry
		if win.img.wm.logDirty {
			imgui.SetScrollHereY(1.0)
		}
	}
	imgui.EndChild()

	// context menu for the log
	if imgui.BeginPopupContextItem() {
		if imgui.Selectable("Clear log") {
			logger.Clear()
		}
		imgui.Spacing()
		if imgui.Selectable("Save log to file") {
			win.save()
		}
		imgui.EndPopup()
	}

	imgui.End()
}

func (win *winLog) save() {
	fn, err := paths.ResourcePath("", fmt.Sprintf("%s.txt", paths.UniqueFilename("log", "")))
	if err != nil {
		logger.Errorf(logger.Allow, "sdlimgui", "could not save log: %v", err)
		return
	}

	f, err := os.Create(fn)
	if err != nil {
		logger.Errorf(logger.Allow, "sdlimgui", "could not save log: %v", err)
		return
	}
	defer func() {
		err := f.Close()
		if err != nil {
			logger.Errorf(logger.Allow, "sdlimgui", "error saving log: %v", err)
		}
	}()

	logger.Write(f)

	logger.Logf(logger.Allow, "sdlimgui", "log saved to %s", fn)
}
