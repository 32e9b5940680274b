// Command solitaire plays Mahjong Solitaire in the terminal and runs headless
// deals and autoplay benchmarks.
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatalf("solitaire: %v", err)
	}
}
