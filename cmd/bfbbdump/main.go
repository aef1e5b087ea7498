package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"bfbb/dolphin"
	"bfbb/gamevar"
	"bfbb/hexdump"
)

func main() {
	addrFlag := flag.String("addr", "0x80000000", "GameCube address to dump from")
	sizeFlag := flag.Uint("size", 256, "Number of bytes to dump")
	outputFlag := flag.String("output", "", "Write raw bytes to this file instead of printing a hexdump")
	processFlag := flag.String("process", "", "Override the Dolphin process name to look for")
	flag.Parse()

	addr, err := strconv.ParseUint(*addrFlag, 0, 32)
	if err != nil {
		fmt.Printf("Error: invalid --addr %q: %v\n", *addrFlag, err)
		os.Exit(1)
	}

	provider := dolphin.NewProvider()
	if *processFlag != "" {
		provider.SetProcessName(*processFlag)
	}

	backend, err := provider.HookBackend()
	if err != nil {
		fmt.Printf("Error hooking Dolphin: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	data, err := backend.ReadBytes(gamevar.Address(addr), gamevar.MemorySize(*sizeFlag))
	if err != nil {
		fmt.Printf("Error reading %d bytes at %#x: %v\n", *sizeFlag, addr, err)
		os.Exit(1)
	}

	if *outputFlag != "" {
		if err := os.WriteFile(*outputFlag, data, 0644); err != nil {
			fmt.Printf("Error writing %s: %v\n", *outputFlag, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(data), *outputFlag)
		return
	}

	fmt.Print(hexdump.Dump(data, hexdump.Options{StartOffset: addr, Color: true}))
}
