// Bubblepreview opens a window with a single like button. Tap it to cycle
// through inactive, processing and active. Use --preset to load another
// layout, and --script to drive it from a JSON test script.
package main

import (
	"os"
)

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
