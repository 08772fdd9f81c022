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
	"github.com/veandco/go-sdl2/sdl"
)

// time periods in milliseconds that the service loop waits for an event
// before drawing another frame.
const (
	busySleepPeriod = 20
	idleSleepPeriod = 250
)

type polling struct {
	img *SdlImgui

	// wake is used to preempt the timeout when we want the next frame to be
	// drawn immediately. for example, closing a window might feel laggy
	// without it
	wake bool

	// index of the most recent log entry seen by the service loop. a change
	// means the log windows have something new to show
	lastLogIndex int
}

func newPolling(img *SdlImgui) *polling {
	return &polling{
		img:          img,
		lastLogIndex: -1,
	}
}

// alert forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

// logChanged notes the index of the most recent log entry and returns true
// if it is different to the last time.
func (pol *polling) logChanged(latest int) bool {
	if latest == pol.lastLogIndex {
		return false
	}
	pol.lastLogIndex = latest
	return true
}

func (pol *polling) wait() sdl.Event {
	var timeout int

	if pol.wake {
		pol.wake = false
	} else if pol.img.wm.busy() {
		timeout = busySleepPeriod
	} else {
		timeout = idleSleepPeriod
	}

	return sdl.WaitEventTimeout(timeout)
}
