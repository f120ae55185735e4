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
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/hattonsw/padbridge/controller"
	"github.com/hattonsw/padbridge/controller/sdlpad"
	"github.com/hattonsw/padbridge/logger"
	"github.com/hattonsw/padbridge/statsview"
)

const usageSummary = `usage: padbridge [flags] [mode]

modes:
  LIST     show attached controllers and their controls (default)
  MONITOR  poll attached controllers and show live input state
`

func main() {
	echoLog := flag.Bool("log", false, "echo the central log to stderr as entries arrive")
	stats := flag.Bool("statsview", false, "run the statsview server (requires the statsview build tag)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageSummary)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	mode := "LIST"
	if flag.NArg() > 0 {
		mode = strings.ToUpper(flag.Arg(0))
	}

	reg := controller.NewRegistry()
	co := sdlpad.NewCoordinator(sdlpad.SDL(), reg)

	// devices attached before Init() are published by the time it
	// returns. failure to start is visible in the log only
	co.Init()
	defer co.DeInit()

	// #ctrlc an interrupt must still deinitialise cleanly
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	var err error
	switch mode {
	case "LIST":
		err = list(reg)
	case "MONITOR":
		err = monitor(reg, co, intChan)
	default:
		err = fmt.Errorf("unknown mode: %s", mode)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		logger.Tail(os.Stderr, 10)
		os.Exit(10)
	}
}

// list prints every published device along with its control catalogue
func list(reg *controller.Registry) error {
	devs := reg.Devices()
	if len(devs) == 0 {
		fmt.Println("no controllers attached")
		return nil
	}

	for _, dev := range devs {
		id, _ := dev.PreferredID()
		fmt.Printf("%s (%s, slot %d)\n", dev.Name(), dev.Source(), id)
		for _, inp := range dev.Inputs() {
			fmt.Printf("  input: %s\n", inp.Name())
		}
		for _, out := range dev.Outputs() {
			fmt.Printf("  output: %s\n", out.Name())
		}
	}

	return nil
}
