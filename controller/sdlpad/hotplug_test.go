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
	"errors"
	"testing"

	"github.com/hattonsw/padbridge/controller"
	"github.com/hattonsw/padbridge/test"
)

func TestInitDeInitNoControllers(t *testing.T) {
	sys := newFakeSystem()
	reg := controller.NewRegistry()
	co := NewCoordinator(sys, reg)

	co.Init()
	test.ExpectEquality(t, len(reg.Devices()), 0)

	// DeInit must terminate cleanly even with nothing attached
	co.DeInit()
	test.ExpectEquality(t, sys.quits, 1)

	// further calls are no-ops
	co.DeInit()
	co.PopulateDevices()
	test.ExpectEquality(t, sys.quits, 1)
}

func TestInitFailure(t *testing.T) {
	sys := newFakeSystem()
	sys.initErr = errors.New("no controller subsystem")
	reg := controller.NewRegistry()
	co := NewCoordinator(sys, reg)

	// Init returns without hanging and the subsystem is inert
	co.Init()
	test.ExpectEquality(t, len(reg.Devices()), 0)
	co.PopulateDevices()
	co.DeInit()
}

func TestRegisterEventsFailure(t *testing.T) {
	sys := newFakeSystem()
	sys.registerFail = true
	reg := controller.NewRegistry()
	co := NewCoordinator(sys, reg)

	co.Init()
	test.ExpectEquality(t, len(reg.Devices()), 0)
	co.PopulateDevices()
	co.DeInit()
}

func TestStartupHints(t *testing.T) {
	sys := newFakeSystem()
	reg := controller.NewRegistry()
	co := NewCoordinator(sys, reg)

	co.Init()
	defer co.DeInit()

	test.ExpectEquality(t, sys.hints[hintPS4Rumble], "1")
	test.ExpectEquality(t, sys.hints[hintPS5Rumble], "1")
	test.ExpectEquality(t, sys.hints[hintJoyCons], "1")

	// linked version is 2.0.14 so button labelling is disabled
	test.ExpectEquality(t, sys.hints[hintButtonLabels], "0")
}

func TestStartupHintsOldLibrary(t *testing.T) {
	sys := newFakeSystem()
	sys.version = [3]uint8{2, 0, 12}
	reg := controller.NewRegistry()
	co := NewCoordinator(sys, reg)

	co.Init()
	defer co.DeInit()

	_, set := sys.hints[hintButtonLabels]
	test.ExpectFailure(t, set)
}

func TestDrainPhase(t *testing.T) {
	padA := newFakePad("pad a", 100)
	padB := newFakePad("pad b", 101)
	sys := newFakeSystem(padA, padB)

	// events generated by the library's startup enumeration are queued
	// before Init is called
	sys.attach(0)
	sys.attach(1)

	reg := controller.NewRegistry()
	co := NewCoordinator(sys, reg)

	// Init does not return until the backlog has been processed: no
	// waiting required
	co.Init()
	defer co.DeInit()

	test.ExpectEquality(t, len(reg.Devices()), 2)
}

func TestDuplicateInstanceID(t *testing.T) {
	// two enumeration slots reporting the same hardware instance
	padA := newFakePad("pad a", 100)
	padB := newFakePad("pad b", 100)
	sys := newFakeSystem(padA, padB)

	sys.attach(0)
	sys.attach(1)

	reg := controller.NewRegistry()
	co := NewCoordinator(sys, reg)

	co.Init()
	defer co.DeInit()

	// the registry never holds two devices with the same instance id
	test.ExpectEquality(t, len(reg.Devices()), 1)
}

func TestOpenFailureSkipsIndex(t *testing.T) {
	padA := newFakePad("pad a", 100)
	padB := newFakePad("pad b", 101)
	padA.openErr = errors.New("open failed")
	sys := newFakeSystem(padA, padB)

	sys.attach(0)
	sys.attach(1)

	reg := controller.NewRegistry()
	co := NewCoordinator(sys, reg)

	co.Init()
	defer co.DeInit()

	devs := reg.Devices()
	test.DemandEquality(t, len(devs), 1)
	test.ExpectEquality(t, devs[0].Name(), "pad b")
}

func TestPublishDevice(t *testing.T) {
	// a device exposing no controls at all is closed and never offered to
	// the add function
	pad := newFakePad("pad", 100)
	dev := newDevice(newFakeSystem(pad), pad, 0)
	dev.inputs = nil
	dev.outputs = nil

	publishDevice(dev, func(controller.Device) bool {
		t.Fatalf("empty device offered for publication")
		return false
	})
	test.ExpectSuccess(t, pad.closed)

	// a device the add function rejects is closed
	pad = newFakePad("pad", 100)
	dev = newDevice(newFakeSystem(pad), pad, 0)

	publishDevice(dev, func(controller.Device) bool { return false })
	test.ExpectSuccess(t, pad.closed)

	// an accepted device is left open
	pad = newFakePad("pad", 100)
	dev = newDevice(newFakeSystem(pad), pad, 0)

	publishDevice(dev, func(controller.Device) bool { return true })
	test.ExpectFailure(t, pad.closed)
}

func TestHotplug(t *testing.T) {
	pad := newFakePad("pad", 100)
	sys := newFakeSystem(pad)
	reg := controller.NewRegistry()
	co := NewCoordinator(sys, reg)

	co.Init()
	defer co.DeInit()
	test.ExpectEquality(t, len(reg.Devices()), 0)

	// connect
	sys.attach(0)
	waitFor(t, func() bool { return len(reg.Devices()) == 1 })

	// disconnect. matching is by instance id
	sys.detach(100)
	waitFor(t, func() bool { return len(reg.Devices()) == 0 })
	test.ExpectSuccess(t, pad.closed)
}

func TestRemovalMiss(t *testing.T) {
	pad := newFakePad("pad", 100)
	sys := newFakeSystem(pad)

	sys.attach(0)

	// a disconnect for an instance id that matches nothing is a no-op
	sys.detach(999)

	reg := controller.NewRegistry()
	co := NewCoordinator(sys, reg)

	co.Init()
	defer co.DeInit()

	test.ExpectEquality(t, len(reg.Devices()), 1)
	test.ExpectFailure(t, pad.closed)
}

func TestPopulateDevices(t *testing.T) {
	padA := newFakePad("pad a", 100)
	padB := newFakePad("pad b", 101)
	sys := newFakeSystem(padA, padB)
	reg := controller.NewRegistry()
	co := NewCoordinator(sys, reg)

	co.Init()
	test.ExpectEquality(t, len(reg.Devices()), 0)

	// populate opens every currently attached index
	co.PopulateDevices()
	waitFor(t, func() bool { return len(reg.Devices()) == 2 })

	// populating again swaps the list rather than accumulating. the stop
	// event pushed by DeInit queues behind the populate request so by the
	// time DeInit returns the second populate has been processed
	co.PopulateDevices()
	co.DeInit()
	test.ExpectEquality(t, len(reg.Devices()), 2)
}

func TestInitWhileRunning(t *testing.T) {
	sys := newFakeSystem()
	reg := controller.NewRegistry()
	co := NewCoordinator(sys, reg)

	co.Init()
	defer co.DeInit()

	// a second Init without an intervening DeInit is refused
	co.Init()
	test.ExpectEquality(t, sys.quits, 0)
}
