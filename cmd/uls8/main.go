// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"slices"

	"github.com/ezrec/uls8/emulator"
)

func main() {
	var defines bool
	var verbose bool

	flag.BoolVar(&defines, "defines", false, "Print machine defines, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	// Diagnostics share standard output with PRN.
	log.SetFlags(0)
	log.SetOutput(os.Stdout)

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	if defines {
		all := maps.Collect(emu.Defines())
		for _, name := range slices.Sorted(maps.Keys(all)) {
			fmt.Printf("%s\t%s\n", name, all[name])
		}
		return
	}

	if flag.NArg() != 1 {
		log.Fatalf("usage: %v [options] progfile", os.Args[0])
	}

	path := flag.Arg(0)
	inf, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer inf.Close()

	if err = emu.Load(inf); err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	if err = emu.Run(); err != nil {
		log.Fatal(err)
	}
}
