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
	"io"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/k9engine/k9/console"
	"github.com/k9engine/k9/curated"
	"github.com/k9engine/k9/paths"
)

// imguiIniFile is where imgui will store the coordinates of the imgui windows
const imguiIniFile = "debugui_imgui.ini"

// SdlImgui is an sdl based debug interface for the console using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	rnd     *gl32

	// the console being driven by the debug interface. the window manager is
	// the console's Interface
	con *console.Console

	// imgui window management
	wm *manager

	// the colors used by the imgui system
	cols *imguiColors

	// polling decides how long the service loop waits for events
	polling *polling
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
// The console is created with the window manager as its Interface.
//
// MUST ONLY be called from the gui thread.
func NewSdlImgui() (*SdlImgui, error) {
	img := &SdlImgui{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
	}

	// path to dear imgui ini file
	iniPath, err := paths.ResourcePath("", imguiIniFile)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.io.SetIniFilename(iniPath)

	img.cols = newColors()

	img.plt, err = newPlatform(img)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.rnd, err = newGl32(img)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.wm = newManager(img)

	img.con, err = console.NewConsole(img.wm)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.wm.addDefaultWindows()

	img.polling = newPolling(img)

	return img, nil
}

// Console returns the console driven by the debug interface.
func (img *SdlImgui) Console() *console.Console {
	return img.con
}

// Destroy releases the resources used by the debug interface. Errors are
// written to the output writer.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Destroy(output io.Writer) {
	img.wm.destroy()
	img.rnd.destroy()

	err := img.plt.destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	img.context.Destroy()
}

// Run services the debug interface until the console receives a quit
// request or the application window is closed.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Run() {
	for !img.con.QuitRequested() {
		img.Service()
	}
}

// quit is called when the application window is closed.
func (img *SdlImgui) quit() {
	img.con.RequestQuit()
}
