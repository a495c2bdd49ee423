// Command nes6502trace loads an iNES ROM, resets a Cpu against it, and
// either runs it to completion while emitting nestest.log-compatible
// trace lines or drops into the interactive step debugger.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"nes6502core/cartridge"
	"nes6502core/cpu"
	"nes6502core/mem"
	"nes6502core/ppu"
)

func main() {
	trace := flag.Bool("trace", true, "emit a nestest.log-compatible trace line per instruction")
	debug := flag.Bool("debug", false, "enter the interactive step debugger instead of free-running")
	start := flag.String("start", "", "override the program counter after reset (hex, e.g. C000)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: nes6502trace [flags] <rom-file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	romPath := flag.Arg(0)

	data, err := os.ReadFile(romPath)
	if err != nil {
		log.Fatalf("nes6502trace: %v", err)
	}

	cart, err := cartridge.Load(romPath, data)
	if err != nil {
		log.Fatalf("nes6502trace: %v", err)
	}

	bus := mem.NewBus(ppu.New(), cart)
	c := cpu.New(bus)
	c.Reset()

	if *start != "" {
		pc, err := strconv.ParseUint(*start, 16, 16)
		if err != nil {
			log.Fatalf("nes6502trace: bad -start value %q: %v", *start, err)
		}
		c.PC = uint16(pc)
	}

	if *debug {
		if err := c.Debug(); err != nil {
			log.Fatalf("nes6502trace: %v", err)
		}
		return
	}

	run(c, *trace)
}

func run(c *cpu.Cpu, withTrace bool) {
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for !c.Halted {
		if withTrace {
			line, err := cpu.Trace(c)
			if err != nil {
				log.Fatalf("nes6502trace: %v", err)
			}
			fmt.Fprintln(out, line)
		}
		if err := c.Step(); err != nil {
			log.Fatalf("nes6502trace: %v", err)
		}
	}
}
