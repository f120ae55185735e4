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

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hattonsw/padbridge/controller"
	"github.com/hattonsw/padbridge/controller/sdlpad"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// the polling frequency of the monitor loop
const monitorRate = time.Second / 60

// ansiClearLine erases from the cursor to the end of the line
const ansiClearLine = "\r\033[2K"

// monitorTerm puts the terminal into cbreak mode so that single
// keypresses reach the monitor without waiting for a return key
type monitorTerm struct {
	input      *os.File
	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

func (mt *monitorTerm) initialise() error {
	mt.input = os.Stdin

	if err := termios.Tcgetattr(mt.input.Fd(), &mt.canAttr); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	mt.cbreakAttr = mt.canAttr
	termios.Cfmakecbreak(&mt.cbreakAttr)

	if err := termios.Tcsetattr(mt.input.Fd(), termios.TCSANOW, &mt.cbreakAttr); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	return nil
}

// restore the terminal to canonical mode
func (mt *monitorTerm) restore() {
	_ = termios.Tcsetattr(mt.input.Fd(), termios.TCSANOW, &mt.canAttr)
}

// keypresses returns a channel of raw keypresses. the channel is closed
// if the input file yields an error
func (mt *monitorTerm) keypresses() chan byte {
	ch := make(chan byte, 1)
	go func() {
		b := make([]byte, 1)
		for {
			n, err := mt.input.Read(b)
			if err != nil {
				close(ch)
				return
			}
			if n == 1 {
				ch <- b[0]
			}
		}
	}()
	return ch
}

// monitor polls the registry and renders live input state for the first
// published device. keyboard control: q to quit, p to repopulate the
// device list, r to toggle rumble on every output
func monitor(reg *controller.Registry, co *sdlpad.Coordinator, intChan chan os.Signal) error {
	mt := &monitorTerm{}
	if err := mt.initialise(); err != nil {
		return err
	}
	defer mt.restore()

	fmt.Println("monitoring: [q] quit  [p] repopulate  [r] rumble on/off")

	keys := mt.keypresses()
	tck := time.NewTicker(monitorRate)
	defer tck.Stop()

	rumbling := false

	for {
		select {
		case <-intChan:
			fmt.Println()
			return nil

		case k, ok := <-keys:
			if !ok {
				// input has gone away. carry on polling
				keys = nil
				continue
			}
			switch k {
			case 'q':
				fmt.Println()
				return nil

			case 'p':
				co.PopulateDevices()

			case 'r':
				rumbling = !rumbling
				var state controller.ControlState
				if rumbling {
					state = 0.75
				}
				// write under the registry's critical section. a device
				// removed by the hot-plug goroutine mid-walk would
				// otherwise receive a write after it has been closed
				reg.ForEachOutput(func(out controller.Output) {
					out.SetState(state)
				})
			}

		case <-tck.C:
			reg.UpdateInput()
			fmt.Print(ansiClearLine, describe(reg))
		}
	}
}

// describe summarises the first published device: its name and any
// controls currently away from rest
func describe(reg *controller.Registry) string {
	devs := reg.Devices()
	if len(devs) == 0 {
		return "no controllers attached"
	}
	dev := devs[0]

	s := strings.Builder{}
	s.WriteString(dev.Name())

	for _, inp := range dev.Inputs() {
		// non-detectable inputs drift on their own and would clutter the
		// summary
		if !inp.Detectable() {
			continue
		}
		if v := inp.State(); v > 0.05 {
			s.WriteString(fmt.Sprintf("  %s=%.2f", inp.Name(), float64(v)))
		}
	}

	return s.String()
}
