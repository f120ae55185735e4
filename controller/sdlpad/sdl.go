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

import (
	"fmt"

	"github.com/hattonsw/padbridge/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL returns the System implementation backed by the linked SDL
// library
func SDL() System {
	return sdlSystem{}
}

type sdlSystem struct{}

func (sdlSystem) Init() error {
	return sdl.Init(sdl.INIT_GAMECONTROLLER | sdl.INIT_HAPTIC)
}

func (sdlSystem) Quit() {
	sdl.Quit()
}

func (sdlSystem) Version() (uint8, uint8, uint8) {
	var v sdl.Version
	sdl.GetVersion(&v)
	return v.Major, v.Minor, v.Patch
}

func (sdlSystem) SetHint(name string, value string) bool {
	return sdl.SetHint(name, value)
}

func (sdlSystem) RegisterEvents(n int) (uint32, bool) {
	code := sdl.RegisterEvents(n)
	return code, code != 0xffffffff
}

func (sdlSystem) PollEvent() (Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return Event{}, false
	}
	return translateEvent(ev), true
}

func (sdlSystem) WaitEvent() (Event, bool) {
	ev := sdl.WaitEvent()
	if ev == nil {
		return Event{}, false
	}
	return translateEvent(ev), true
}

func (sdlSystem) PushEvent(code uint32) {
	if _, err := sdl.PushEvent(&sdl.UserEvent{Type: code}); err != nil {
		logger.Logf("sdlpad", "push event: %v", err)
	}
}

func (sdlSystem) NumPads() int {
	return sdl.NumJoysticks()
}

func (sdlSystem) Open(index int) (Pad, error) {
	ctrl := sdl.GameControllerOpen(index)
	if ctrl == nil {
		return nil, fmt.Errorf("sdlpad: no controller at index %d: %v", index, sdl.GetError())
	}
	return sdlPad{ctrl: ctrl}, nil
}

func (sdlSystem) Update() {
	sdl.GameControllerUpdate()
}

// translateEvent reduces the SDL event to the Event type. events the
// package has no interest in translate to EventNone. custom event codes
// arrive as user events
func translateEvent(ev sdl.Event) Event {
	switch ev := ev.(type) {
	case *sdl.ControllerDeviceEvent:
		switch ev.GetType() {
		case sdl.CONTROLLERDEVICEADDED:
			return Event{Kind: EventAttached, Which: int32(ev.Which)}
		case sdl.CONTROLLERDEVICEREMOVED:
			return Event{Kind: EventDetached, Which: int32(ev.Which)}
		}
	case *sdl.UserEvent:
		return Event{Kind: EventCustom, Code: ev.GetType()}
	}
	return Event{}
}

type sdlPad struct {
	ctrl *sdl.GameController
}

func (p sdlPad) Name() string {
	return p.ctrl.Name()
}

func (p sdlPad) Attached() bool {
	return p.ctrl.Attached()
}

func (p sdlPad) InstanceID() int32 {
	return int32(p.ctrl.Joystick().InstanceID())
}

func (p sdlPad) Button(button sdl.GameControllerButton) byte {
	return p.ctrl.Button(button)
}

func (p sdlPad) Axis(axis sdl.GameControllerAxis) int16 {
	return p.ctrl.Axis(axis)
}

func (p sdlPad) Rumble(left uint16, right uint16, durationMs uint32) error {
	return p.ctrl.Rumble(left, right, durationMs)
}

func (p sdlPad) PowerLevel() sdl.JoystickPowerLevel {
	return p.ctrl.Joystick().CurrentPowerLevel()
}

func (p sdlPad) Close() {
	p.ctrl.Close()
}
