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

import "github.com/inkyblackness/imgui-go/v4"

// return the height of the window from the current cursor position to the end
// of the window frame. this will need to be adjusted if the window has a
// horizontal scroll bar.
func imguiRemainingWinHeight() float32 {
	return imgui.WindowHeight() - imgui.CursorPosY() - imgui.CurrentStyle().FramePadding().Y*2 - imgui.CurrentStyle().ItemInnerSpacing().Y
}

// draw text that is aligned with the frame padding of the widget that
// follows on the same line.
func imguiLabel(text string) {
	imgui.AlignTextToFramePadding()
	imgui.Text(text)
	imgui.SameLine()
}

// draw text in the specified color.
func imguiColorText(col imgui.Vec4, text string) {
	imgui.PushStyleColor(imgui.StyleColorText, col)
	imgui.Text(text)
	imgui.PopStyleColor()
}
