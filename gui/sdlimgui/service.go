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
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// Service handles pending SDL events and draws a single frame.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Service() {
	// poll for sdl event or timeout
	ev := img.polling.wait()

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit()

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(string(ev.Text[:]))

		case *sdl.KeyboardEvent:
			switch ev.Type {
			case sdl.KEYDOWN:
				img.io.KeyPress(int(ev.Keysym.Scancode))
			case sdl.KEYUP:
				img.io.KeyRelease(int(ev.Keysym.Scancode))
			}
			img.plt.updateKeyModifier()
			img.polling.alert()

		case *sdl.MouseButtonEvent:
			// trigger service wake in time for next Service() iteration.
			// without this, the results of the mouse button will not be
			// seen until the timeout (in the next iteration) has elapsed.
			img.polling.alert()

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(-deltaX/4, deltaY/4)
			img.polling.alert()

		case *sdl.WindowEvent:
			img.polling.alert()
		}
	}

	img.draw()
}

func (img *SdlImgui) draw() {
	img.plt.newFrame()
	imgui.NewFrame()

	img.wm.draw()

	img.rnd.preRender()
	imgui.Render()
	img.rnd.render()
	img.plt.postRender()
}
