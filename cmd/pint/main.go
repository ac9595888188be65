package main

import (
	"fmt"
	"os"

	"github.com/pintlang/pint/pkg/cli"
)

func main() {
	// Catch panics and show a user-friendly error.
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	os.Exit(cli.Entry(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
