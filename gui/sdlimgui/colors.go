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
	"github.com/k9engine/k9/logger"
)

// imguiColors defines all the colors used by the debug interface.
type imguiColors struct {
	// background of the application window
	Background imgui.Vec4

	// console window
	ConsoleBackground imgui.Vec4
	ConsoleEcho       imgui.Vec4
	ConsoleSuffix     imgui.Vec4
	ConsoleCandidate  imgui.Vec4
	ConsoleSelected   imgui.Vec4
	ConsoleMore       imgui.Vec4

	// log entries by level
	LogBackground imgui.Vec4
	LogTrace      imgui.Vec4
	LogInfo       imgui.Vec4
	LogWarning    imgui.Vec4
	LogError      imgui.Vec4
}

func newColors() *imguiColors {
	return &imguiColors{
		Background: imgui.Vec4{X: 0.1, Y: 0.1, Z: 0.12, W: 1.0},

		ConsoleBackground: imgui.Vec4{X: 0.08, Y: 0.08, Z: 0.08, W: 0.95},
		ConsoleEcho:       imgui.Vec4{X: 0.8, Y: 0.8, Z: 0.8, W: 1.0},
		ConsoleSuffix:     imgui.Vec4{X: 0.5, Y: 0.5, Z: 0.5, W: 1.0},
		ConsoleCandidate:  imgui.Vec4{X: 0.7, Y: 0.7, Z: 0.9, W: 1.0},
		ConsoleSelected:   imgui.Vec4{X: 1.0, Y: 1.0, Z: 0.4, W: 1.0},
		ConsoleMore:       imgui.Vec4{X: 0.5, Y: 0.5, Z: 0.6, W: 1.0},

		LogBackground: imgui.Vec4{X: 0.1, Y: 0.1, Z: 0.15, W: 0.95},
		LogTrace:      imgui.Vec4{X: 0.5, Y: 0.6, Z: 0.6, W: 1.0},
		LogInfo:       imgui.Vec4{X: 0.9, Y: 0.9, Z: 0.9, W: 1.0},
		LogWarning:    imgui.Vec4{X: 1.0, Y: 0.8, Z: 0.3, W: 1.0},
		LogError:      imgui.Vec4{X: 1.0, Y: 0.4, Z: 0.4, W: 1.0},
	}
}

// level returns the text color for a log level.
func (cols *imguiColors) level(l logger.Level) imgui.Vec4 {
	switch l {
	case logger.Trace:
		return cols.LogTrace
	case logger.Warning:
		return cols.LogWarning
	case logger.Error:
		return cols.LogError
	}
	return cols.LogInfo
}
