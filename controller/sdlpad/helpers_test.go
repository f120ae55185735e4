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
	"testing"
	"time"

	"github.com/hattonsw/padbridge/controller"
	"github.com/veandco/go-sdl2/sdl"
)

// fakePad is a scriptable Pad implementation
type fakePad struct {
	name     string
	instance int32
	openErr  error

	buttons map[sdl.GameControllerButton]byte
	axes    map[sdl.GameControllerAxis]int16
	power   sdl.JoystickPowerLevel

	rumbles []rumbleCall
	closed  bool
}

type rumbleCall struct {
	left     uint16
	right    uint16
	duration uint32
}

func newFakePad(name string, instance int32) *fakePad {
	return &fakePad{
		name:     name,
		instance: instance,
		buttons:  make(map[sdl.GameControllerButton]byte),
		axes:     make(map[sdl.GameControllerAxis]int16),
		power:    sdl.JOYSTICK_POWER_UNKNOWN,
	}
}

func (p *fakePad) Name() string { return p.name }

func (p *fakePad) Attached() bool { return !p.closed }

func (p *fakePad) InstanceID() int32 { return p.instance }

func (p *fakePad) Button(button sdl.GameControllerButton) byte { return p.buttons[button] }

func (p *fakePad) Axis(axis sdl.GameControllerAxis) int16 { return p.axes[axis] }

func (p *fakePad) Rumble(left uint16, right uint16, durationMs uint32) error {
	p.rumbles = append(p.rumbles, rumbleCall{left: left, right: right, duration: durationMs})
	return nil
}

func (p *fakePad) PowerLevel() sdl.JoystickPowerLevel { return p.power }

func (p *fakePad) Close() { p.closed = true }

// fakeSystem is a scriptable System implementation. the event queue is a
// buffered channel so that tests can seed events before Init() and
// inject them while the coordinator is listening
type fakeSystem struct {
	initErr      error
	registerFail bool
	version      [3]uint8

	pads []*fakePad

	queue chan Event

	hints   map[string]string
	updates int
	quits   int
}

func newFakeSystem(pads ...*fakePad) *fakeSystem {
	return &fakeSystem{
		version: [3]uint8{2, 0, 14},
		pads:    pads,
		queue:   make(chan Event, 64),
		hints:   make(map[string]string),
	}
}

func (s *fakeSystem) Init() error { return s.initErr }

func (s *fakeSystem) Quit() { s.quits++ }

func (s *fakeSystem) Version() (uint8, uint8, uint8) {
	return s.version[0], s.version[1], s.version[2]
}

func (s *fakeSystem) SetHint(name string, value string) bool {
	s.hints[name] = value
	return true
}

func (s *fakeSystem) RegisterEvents(n int) (uint32, bool) {
	if s.registerFail {
		return 0xffffffff, false
	}
	return 0x9000, true
}

func (s *fakeSystem) PollEvent() (Event, bool) {
	select {
	case ev := <-s.queue:
		return ev, true
	default:
		return Event{}, false
	}
}

func (s *fakeSystem) WaitEvent() (Event, bool) {
	ev, ok := <-s.queue
	return ev, ok
}

func (s *fakeSystem) PushEvent(code uint32) {
	s.queue <- Event{Kind: EventCustom, Code: code}
}

func (s *fakeSystem) NumPads() int { return len(s.pads) }

func (s *fakeSystem) Open(index int) (Pad, error) {
	if index < 0 || index >= len(s.pads) {
		return nil, fmt.Errorf("no controller at index %d", index)
	}
	if s.pads[index].openErr != nil {
		return nil, s.pads[index].openErr
	}
	s.pads[index].closed = false
	return s.pads[index], nil
}

func (s *fakeSystem) Update() { s.updates++ }

// attach queues the event the library would generate for a newly
// connected controller
func (s *fakeSystem) attach(index int) {
	s.queue <- Event{Kind: EventAttached, Which: int32(index)}
}

// detach queues the event the library would generate for an unplugged
// controller. the argument is the instance id, not the index
func (s *fakeSystem) detach(instance int32) {
	s.queue <- Event{Kind: EventDetached, Which: instance}
}

// waitFor polls the condition until it is true or the deadline passes.
// used for properties that are updated asynchronously by the hot-plug
// goroutine
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for condition")
}

// findInput returns the named input of a device
func findInput(t *testing.T, dev controller.Device, name string) controller.Input {
	t.Helper()
	for _, inp := range dev.Inputs() {
		if inp.Name() == name {
			return inp
		}
	}
	t.Fatalf("device %s has no input named %s", dev.Name(), name)
	return nil
}

// findOutput returns the named output of a device
func findOutput(t *testing.T, dev controller.Device, name string) controller.Output {
	t.Helper()
	for _, out := range dev.Outputs() {
		if out.Name() == name {
			return out
		}
	}
	t.Fatalf("device %s has no output named %s", dev.Name(), name)
	return nil
}
