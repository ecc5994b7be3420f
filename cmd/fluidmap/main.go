// SPDX-License-Identifier: Unlicense OR MIT

// Command fluidmap works with fluid keymap files.
//
//	fluidmap print            dump the default mapping as TOML
//	fluidmap check FILE...    validate keymap files
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"samerion.com/fluid/io/keymap"
)

var verbose = flag.Bool("v", false, "verbose output")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <print|check> [file...]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	switch flag.Arg(0) {
	case "print":
		if err := keymap.Default().Save(os.Stdout); err != nil {
			errorf("fluidmap: %v", err)
		}
	case "check":
		files := flag.Args()[1:]
		if len(files) == 0 {
			fmt.Fprintf(os.Stderr, "Please specify files to check\n\n")
			flag.Usage()
		}
		if err := check(files); err != nil {
			errorf("fluidmap: %v", err)
		}
	default:
		flag.Usage()
	}
}

func check(files []string) error {
	var checks errgroup.Group
	for _, path := range files {
		path := path
		checks.Go(func() error {
			// Load on top of the defaults, the way applications do.
			m := keymap.Default()
			if err := m.LoadFile(path); err != nil {
				return err
			}
			if *verbose {
				fmt.Printf("%s: %d layers\n", path, len(m.Layers))
			}
			return nil
		})
	}
	return checks.Wait()
}

func errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
