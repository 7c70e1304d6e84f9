// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jpda parses a JSON value from a file or standard input with the
// pushdown parser and prints it.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
