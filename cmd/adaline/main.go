// Package main provides the adaline CLI.
package main

import (
	"fmt"
	"io"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "adaline: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		usage(w)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(w, "adaline %s\n", version)
		return nil
	case "info":
		return printInfo(w)
	case "transfers":
		return printTransfers(w)
	case "fit":
		return fit(args[1:], w)
	default:
		usage(w)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "adaline - adaptive linear unit with LMS training")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                         Show version")
	fmt.Fprintln(w, "  info                            Show host CPU details")
	fmt.Fprintln(w, "  transfers                       List transfer functions")
	fmt.Fprintln(w, "  fit [transfer] [steps] [mu]     Fit y = 0.8x - 0.3 online and report weights")
}
