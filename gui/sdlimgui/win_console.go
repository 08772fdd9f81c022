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
	"strings"
	"unicode/utf8"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/k9engine/k9/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const winConsoleID = "Console"

// the smallest number of lines given to the candidate list
const minCandidateSlots = 3

type winConsole struct {
	windowManagement
	img *SdlImgui

	// the input buffer used by the imgui input widget. the autocomplete
	// engine is updated from the buffer every frame
	input string

	// position of the text cursor in the input buffer, counted in runes
	caret int

	// height of input line and preview line at bottom of window
	inputHeight float32
}

func newWinConsole(img *SdlImgui) *winConsole {
	return &winConsole{
		img: img,
	}
}

func (win *winConsole) id() string {
	return winConsoleID
}

func (win *winConsole) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 20, Y: 40}, imgui.ConditionFirstUseEver, imgui.Vec2{X: 0, Y: 0})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 560, Y: 500}, imgui.ConditionFirstUseEver)

	imgui.PushStyleColor(imgui.StyleColorWindowBg, win.img.cols.ConsoleBackground)
	imgui.PushStyleVarVec2(imgui.StyleVarFramePadding, imgui.Vec2{X: 2, Y: 2})
	imgui.BeginV(winConsoleID, &win.open, 0)
	imgui.PopStyleVar()
	imgui.PopStyleColor()

	eng := win.img.con.Input()

	// the space above the input line is shared by the log tail and the
	// candidate list when it is showing
	height := imguiRemainingWinHeight() - win.inputHeight
	lineHeight := imgui.TextLineHeightWithSpacing()

	var listHeight float32
	var slots int
	if eng.ShowList() {
		slots = max(int(height/2/lineHeight), minCandidateSlots)
		listHeight = float32(slots) * lineHeight
	}

	// make a note if scrollback has been clicked or is active. we'll use this
	// to help focus the keyboard for the input line
	var scrollbackActive bool

	if imgui.BeginChildV("scrollback", imgui.Vec2{X: 0, Y: height - listHeight}, false, 0) {
		scrollbackActive = imgui.IsItemActive() || (imgui.IsWindowHovered() && imgui.IsMouseReleased(0))

		imgui.PushTextWrapPosV(0)
		var clipper imgui.ListClipper
		clipper.Begin(len(win.img.wm.entries))
		for clipper.Step() {
			for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
				e := win.img.wm.entries[i]
				imguiColorText(win.img.cols.level(e.Level), strings.TrimSpace(e.String()))
			}
		}
		imgui.PopTextWrapPos()

		// if the log has been added to, scroll to bottom of window
		if win.img.wm.logDirty {
			imgui.SetScrollHereY(1.0)
		}
	}
	imgui.EndChild()

	if slots > 0 {
		win.drawCandidates(slots, listHeight)
	}

	// start input line height measurement
	inputHeight := imgui.CursorPosY()

	imguiLabel(win.img.con.Prefs.Prompt.String())

	imgui.PushItemWidth(imgui.WindowWidth() - imgui.CursorPosX())

	// this construct says focus the next InputText() box if
	//  - the console window is focused
	//  - AND if nothing else has been activated since last frame
	if (imgui.IsWindowFocused() && !imgui.IsAnyItemActive()) || scrollbackActive {
		imgui.SetKeyboardFocusHere()
	}

	flags := imgui.InputTextFlagsEnterReturnsTrue |
		imgui.InputTextFlagsCallbackCompletion |
		imgui.InputTextFlagsCallbackHistory |
		imgui.InputTextFlagsCallbackAlways

	if imgui.InputTextV("##input", &win.input, flags, win.callback) {
		eng.SetText(win.input)
		if err := win.img.con.SubmitInput(); err != nil {
			logger.Tracef(logger.Allow, "sdlimgui", "submitted line failed: %v", err)
		}
		win.input = eng.Text()
		win.caret = 0

		// keep focus on the input line after submission
		imgui.SetKeyboardFocusHereV(-1)
	} else {
		eng.SetText(win.input)
	}

	imgui.PopItemWidth()

	win.drawPreview()

	// commit input line height measurement
	win.inputHeight = imgui.CursorPosY() - inputHeight

	imgui.End()
}

// drawPreview draws the line below the input line. it shows the selected
// candidate with the untyped part highlighted.
func (win *winConsole) drawPreview() {
	eng := win.img.con.Input()

	sel, ok := eng.Selected()
	if !ok {
		imgui.Text("")
		return
	}

	imguiColorText(win.img.cols.ConsoleEcho, eng.Text())
	imgui.SameLineV(0, 0)
	imguiColorText(win.img.cols.ConsoleSuffix, eng.Suffix())
	imgui.SameLine()
	imguiColorText(win.img.cols.ConsoleMore, fmt.Sprintf("[%d/%d]", sel.Index+1, len(eng.Candidates())))
}

// drawCandidates draws the windowed list of candidates.
func (win *winConsole) drawCandidates(slots int, height float32) {
	lines, sel := win.img.con.Input().Lines(slots)

	if imgui.BeginChildV("candidates", imgui.Vec2{X: 0, Y: height}, false, 0) {
		for i, l := range lines {
			switch {
			case i == sel:
				imguiColorText(win.img.cols.ConsoleSelected, l)
			case strings.HasPrefix(l, "<"):
				imguiColorText(win.img.cols.ConsoleMore, l)
			default:
				imguiColorText(win.img.cols.ConsoleCandidate, l)
			}
		}
	}
	imgui.EndChild()
}

// callback for the imgui input widget. it forwards the tab and arrow keys to
// the autocomplete engine and updates the input buffer if the engine changes
// the input line.
func (win *winConsole) callback(d imgui.InputTextCallbackData) int32 {
	eng := win.img.con.Input()
	buffer := string(d.Buffer())

	// the buffer may have been edited this frame
	eng.SetText(buffer)

	switch d.EventFlag() {
	case imgui.InputTextFlagsCallbackCompletion:
		eng.Tab()

	case imgui.InputTextFlagsCallbackHistory:
		switch d.EventKey() {
		case imgui.KeyUpArrow:
			eng.Up()
		case imgui.KeyDownArrow:
			eng.Down()
		}

	case imgui.InputTextFlagsCallbackAlways:
		// the caret from the previous frame. the right arrow key has already
		// moved the cursor if it was not at the end of the line
		if imgui.IsKeyPressed(sdl.SCANCODE_RIGHT) {
			eng.Accept(win.caret)
		}
		win.caret = utf8.RuneCount(d.Buffer()[:d.CursorPos()])
	}

	if eng.Text() != buffer {
		d.DeleteBytes(0, len(d.Buffer()))
		d.InsertBytes(0, []byte(eng.Text()))
		d.MarkBufferModified()
		win.caret = utf8.RuneCountInString(eng.Text())
	}

	return 0
}
