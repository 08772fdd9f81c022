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

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/k9engine/k9/logger"
)

const winRecordIDFormat = "Debug Record #%d"

func recordID(index int) string {
	return fmt.Sprintf(winRecordIDFormat, index)
}

// recordIndex returns the log entry index for a record window id. returns
// false if the id is not the id of a record window.
func recordIndex(id string) (int, bool) {
	var index int
	if _, err := fmt.Sscanf(id, winRecordIDFormat, &index); err != nil {
		return 0, false
	}
	if recordID(index) != id {
		return 0, false
	}
	return index, true
}

// winRecord shows a single entry of the log in full.
type winRecord struct {
	windowManagement
	img *SdlImgui

	entry logger.Entry

	// bring the window to the front on the next draw
	focus bool
}

func newWinRecord(img *SdlImgui, e logger.Entry) *winRecord {
	return &winRecord{
		img:   img,
		entry: e,
		focus: true,
	}
}

func (win *winRecord) id() string {
	return recordID(win.entry.Index)
}

func (win *winRecord) draw() {
	if !win.open {
		return
	}

	if win.focus {
		imgui.SetNextWindowFocus()
		win.focus = false
	}

	imgui.SetNextWindowSizeV(imgui.Vec2{X: 400, Y: 150}, imgui.ConditionFirstUseEver)
	imgui.BeginV(win.id(), &win.open, imgui.WindowFlagsNoSavedSettings)

	imguiLabel("Level:")
	imguiColorText(win.img.cols.level(win.entry.Level), win.entry.Level.String())

	imguiLabel("Tag:")
	imgui.Text(win.entry.Tag)

	imguiLabel("Time:")
	imgui.Text(win.entry.Timestamp.Format("15:04:05.000"))

	if win.entry.Repeated > 0 {
		imguiLabel("Repeated:")
		imgui.Text(fmt.Sprintf("%d times", win.entry.Repeated+1))
	}

	imgui.Separator()

	imgui.PushTextWrapPosV(0)
	imgui.Text(win.entry.Detail)
	imgui.PopTextWrapPos()

	imgui.End()
}
