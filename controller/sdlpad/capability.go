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

// EventKind distinguishes the event queue entries the Coordinator cares
// about
type EventKind int

// List of valid EventKind values. EventNone is any event the package has
// no interest in
const (
	EventNone EventKind = iota
	EventAttached
	EventDetached
	EventCustom
)

// Event is the Coordinator's view of one entry in the native event
// queue
type Event struct {
	Kind EventKind

	// Which is the device index for EventAttached and the hardware
	// instance id for EventDetached. device indices are not stable across
	// removals; instance ids are
	Which int32

	// Code identifies EventCustom events. codes are allocated with
	// System.RegisterEvents()
	Code uint32
}

// Pad is one opened controller
type Pad interface {
	// Name of the controller as reported by the hardware
	Name() string

	// Attached is false once the controller has been unplugged
	Attached() bool

	// InstanceID is the hardware instance id. unique for the lifetime of
	// the process
	InstanceID() int32

	// Button returns the raw state of a digital button. non-zero means
	// pressed
	Button(button sdl.GameControllerButton) byte

	// Axis returns the raw state of an analog axis in the signed 16-bit
	// range
	Axis(axis sdl.GameControllerAxis) int16

	// Rumble starts both rumble motors at the given magnitudes for the
	// given duration
	Rumble(left uint16, right uint16, durationMs uint32) error

	// PowerLevel reports the battery state of the controller
	PowerLevel() sdl.JoystickPowerLevel

	// Close the controller. the Pad must not be used after Close
	Close()
}

// System is the process-wide surface of the controller library. exactly
// one System is in use at a time and its Init/Quit pair is owned by the
// Coordinator
type System interface {
	// Init the library. fatal to the Coordinator on failure
	Init() error

	// Quit the library. called exactly once per successful or failed
	// startup
	Quit()

	// Version of the linked library
	Version() (major uint8, minor uint8, patch uint8)

	// SetHint installs a global library hint
	SetHint(name string, value string) bool

	// RegisterEvents allocates n consecutive custom event codes. the
	// second return value is false if the allocation failed
	RegisterEvents(n int) (uint32, bool)

	// PollEvent returns the next queued event without blocking. the
	// second return value is false if the queue is empty
	PollEvent() (Event, bool)

	// WaitEvent blocks until an event is available. the second return
	// value is false if the wait failed
	WaitEvent() (Event, bool)

	// PushEvent appends a custom event to the queue. safe to call from
	// any goroutine
	PushEvent(code uint32)

	// NumPads is the number of currently attached controllers
	NumPads() int

	// Open the controller at the given index
	Open(index int) (Pad, error)

	// Update refreshes the library's cached controller state. called once
	// per polling cycle
	Update()
}
