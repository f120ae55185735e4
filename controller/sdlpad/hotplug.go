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
	"runtime"

	"github.com/hattonsw/padbridge/controller"
	"github.com/hattonsw/padbridge/logger"
)

// hints installed on the library at startup. HIDAPI rumble must be asked
// for explicitly on PS4/PS5 pads; button labelling is disabled so that
// bindings see positional names on Nintendo-layout pads
const (
	hintPS4Rumble    = "SDL_JOYSTICK_HIDAPI_PS4_RUMBLE"
	hintPS5Rumble    = "SDL_JOYSTICK_HIDAPI_PS5_RUMBLE"
	hintButtonLabels = "SDL_GAMECONTROLLER_USE_BUTTON_LABELS"
	hintJoyCons      = "SDL_JOYSTICK_HIDAPI_JOY_CONS"
)

type lifecycle int

const (
	stateUninitialised lifecycle = iota
	stateRunning
	stateStopped
)

// Coordinator owns the hot-plug lifecycle. A single background goroutine
// initialises the library, services its event queue and is the only
// goroutine that constructs or destroys devices.
//
// Init(), DeInit() and PopulateDevices() must all be called from a
// single host goroutine. None of them is safe to call concurrently with
// another
type Coordinator struct {
	sys System
	reg *controller.Registry

	// the two private event codes registered at startup
	stopEvent     uint32
	populateEvent uint32

	state lifecycle

	// closed by the background goroutine on exit. DeInit() waits on it
	done chan struct{}
}

// NewCoordinator is the preferred method of initialisation for the
// Coordinator type. Devices are published to reg
func NewCoordinator(sys System, reg *controller.Registry) *Coordinator {
	return &Coordinator{sys: sys, reg: reg}
}

// Init starts the background goroutine and blocks until it has
// initialised the library, registered its private event codes and
// drained the event backlog generated by the library's own startup
// enumeration. Devices attached before Init was called are published by
// the time it returns.
//
// Failure to start is logged and nothing more: the coordinator is left
// stopped and PopulateDevices() and DeInit() become no-ops
func (co *Coordinator) Init() {
	if co.state == stateRunning {
		logger.Logf("sdlpad", "coordinator is already running")
		return
	}

	// the one-shot gate between the two goroutines. the background
	// goroutine sends exactly once, on every startup path; we wait
	// exactly once
	ready := make(chan bool)

	co.done = make(chan struct{})
	go co.run(ready)

	if <-ready {
		co.state = stateRunning
	} else {
		co.state = stateStopped
	}
}

// DeInit stops the background goroutine and waits for it to exit. The
// stop request travels through the same event queue the goroutine is
// blocked on. No-op if the coordinator is not running
func (co *Coordinator) DeInit() {
	if co.state != stateRunning {
		return
	}

	co.sys.PushEvent(co.stopEvent)
	<-co.done

	co.state = stateStopped
}

// PopulateDevices asks the background goroutine to rebuild the device
// list from the currently attached controllers. Asynchronous: the
// rebuild has not necessarily happened by the time this returns. No-op
// if the coordinator is not running
func (co *Coordinator) PopulateDevices() {
	if co.state != stateRunning {
		return
	}

	co.sys.PushEvent(co.populateEvent)
}

// run is the background goroutine
func (co *Coordinator) run(ready chan<- bool) {
	// the goroutine drives a C library with thread-affine state
	runtime.LockOSThread()

	defer close(co.done)
	defer co.sys.Quit()

	if !co.start(ready) {
		return
	}

	for {
		ev, ok := co.sys.WaitEvent()
		if !ok {
			logger.Logf("sdlpad", "event wait failed: stopping")
			return
		}
		if !co.dispatch(ev) {
			return
		}
	}
}

// start initialises the library and drains the startup event backlog.
// the ready channel receives exactly once whatever path start returns
// by.
//
// the drain exists so that the attach events generated by the library's
// own startup enumeration are processed before Init() returns. without
// it those events would be handled after the host has populated its
// device list by other means, duplicating devices
func (co *Coordinator) start(ready chan<- bool) (ok bool) {
	defer func() {
		ready <- ok
	}()

	if err := co.sys.Init(); err != nil {
		logger.Logf("sdlpad", "library failed to initialise: %v", err)
		return false
	}

	co.sys.SetHint(hintPS4Rumble, "1")
	co.sys.SetHint(hintPS5Rumble, "1")

	// button labelling only exists from 2.0.14
	major, minor, patch := co.sys.Version()
	if major == 2 && minor == 0 && patch >= 14 {
		co.sys.SetHint(hintButtonLabels, "0")
	}
	co.sys.SetHint(hintJoyCons, "1")

	first, registered := co.sys.RegisterEvents(2)
	if !registered {
		logger.Logf("sdlpad", "library failed to register custom events")
		return false
	}
	co.stopEvent = first
	co.populateEvent = first + 1

	for {
		ev, pending := co.sys.PollEvent()
		if !pending {
			break
		}
		if !co.dispatch(ev) {
			return false
		}
	}

	return true
}

// dispatch handles one event. returns false when the loop should
// terminate
func (co *Coordinator) dispatch(ev Event) bool {
	switch {
	case ev.Kind == EventAttached:
		co.openAndAddDevice(int(ev.Which), co.reg.AddDevice)

	case ev.Kind == EventDetached:
		// instance ids are stable across removals, device indices are
		// not. match on the device's own native identity
		co.reg.RemoveDevice(func(dev controller.Device) bool {
			id, ok := dev.NativeID()
			return ok && id == ev.Which
		})

	case ev.Kind == EventCustom && ev.Code == co.populateEvent:
		co.reg.PlatformPopulateDevices(func(add func(controller.Device) bool) {
			for i := 0; i < co.sys.NumPads(); i++ {
				co.openAndAddDevice(i, add)
			}
		})

	case ev.Kind == EventCustom && ev.Code == co.stopEvent:
		return false
	}

	return true
}

// openAndAddDevice opens the controller at the given index and publishes
// it through the add function. a failed open skips the index
func (co *Coordinator) openAndAddDevice(index int, add func(controller.Device) bool) {
	pad, err := co.sys.Open(index)
	if err != nil {
		logger.Logf("sdlpad", "open %d: %v", index, err)
		return
	}

	publishDevice(newDevice(co.sys, pad, index), add)
}

// publishDevice hands a newly constructed device to the add function. a
// device exposing no controls at all is discarded, never published; a
// device the add function rejects is closed
func publishDevice(dev *device, add func(controller.Device) bool) {
	if len(dev.inputs) == 0 && len(dev.outputs) == 0 {
		dev.Close()
		return
	}

	if !add(dev) {
		dev.Close()
	}
}
