// This file is part of Padbridge.
//
// Padbridge is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padbridge is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padbridge.  If not, see <https://www.gnu.org/licenses/>.

package sdlpad

import "github.com/veandco/go-sdl2/sdl"

// the raw range of an analog axis
const (
	axisMin = -32768
	axisMax = 32767
)

// the full range of a rumble motor magnitude
const rumbleMax = 0xffff

type buttonDef struct {
	name   string
	button sdl.GameControllerButton
}

type axisDef struct {
	name string
	axis sdl.GameControllerAxis
}

// the fixed catalogue of digital buttons. the names are the identity of
// the control in host-side bindings and must not change
var namedButtons = []buttonDef{
	{"Button A", sdl.CONTROLLER_BUTTON_A},
	{"Button B", sdl.CONTROLLER_BUTTON_B},
	{"Button X", sdl.CONTROLLER_BUTTON_X},
	{"Button Y", sdl.CONTROLLER_BUTTON_Y},
	{"Pad N", sdl.CONTROLLER_BUTTON_DPAD_UP},
	{"Pad S", sdl.CONTROLLER_BUTTON_DPAD_DOWN},
	{"Pad W", sdl.CONTROLLER_BUTTON_DPAD_LEFT},
	{"Pad E", sdl.CONTROLLER_BUTTON_DPAD_RIGHT},
	{"Start", sdl.CONTROLLER_BUTTON_START},
	{"Back", sdl.CONTROLLER_BUTTON_BACK},
	{"Shoulder L", sdl.CONTROLLER_BUTTON_LEFTSHOULDER},
	{"Shoulder R", sdl.CONTROLLER_BUTTON_RIGHTSHOULDER},
	{"Guide", sdl.CONTROLLER_BUTTON_GUIDE},
	{"Thumb L", sdl.CONTROLLER_BUTTON_LEFTSTICK},
	{"Thumb R", sdl.CONTROLLER_BUTTON_RIGHTSTICK},
	{"Touchpad", sdl.CONTROLLER_BUTTON_TOUCHPAD},
}

var namedTriggers = []axisDef{
	{"Trigger L", sdl.CONTROLLER_AXIS_TRIGGERLEFT},
	{"Trigger R", sdl.CONTROLLER_AXIS_TRIGGERRIGHT},
}

var namedSticks = []axisDef{
	{"Left X", sdl.CONTROLLER_AXIS_LEFTX},
	{"Left Y", sdl.CONTROLLER_AXIS_LEFTY},
	{"Right X", sdl.CONTROLLER_AXIS_RIGHTX},
	{"Right Y", sdl.CONTROLLER_AXIS_RIGHTY},
}

var namedMotors = []string{"Motor L", "Motor R"}
