// Command expander-demo is a terminal playground for expandable containers.
//
// Each expander in the configuration file becomes one screen. The demo
// watches the file and rebuilds the screens on change, carrying every
// widget's state across the rebuild.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
