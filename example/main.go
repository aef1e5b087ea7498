package main

import (
	"errors"
	"fmt"
	"time"

	"bfbb/dolphin"
	"bfbb/game"
	"bfbb/gamevar"
)

// Hooks a running Dolphin instance and reports where the player is and how
// many spatulas they hold, re-hooking whenever the emulator restarts.
func main() {
	provider := dolphin.NewProvider()

	for {
		iface, err := provider.Hook()
		if err != nil {
			fmt.Printf("waiting for Dolphin: %v\n", err)
			time.Sleep(2 * time.Second)
			continue
		}

		for {
			level, err := iface.CurrentLevel()
			if errors.Is(err, gamevar.ErrUnhooked) {
				fmt.Println("emulator went away, re-hooking")
				break
			}
			if err != nil {
				// Scene pointer is null on the main menu and during loads.
				time.Sleep(time.Second)
				continue
			}

			count, err := iface.SpatulaCount()
			if err != nil {
				time.Sleep(time.Second)
				continue
			}

			fmt.Printf("%s: %d/%d spatulas\n", level, count, game.NumSpatulas)
			time.Sleep(time.Second)
		}
	}
}
