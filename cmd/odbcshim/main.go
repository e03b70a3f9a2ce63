// The odbcshim command exercises the dynamic-module loader and prepares
// vendored driver manager sources for building without autotools.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(Main())
}

// errReported is returned by commands that have already told the user
// what went wrong.
var errReported = errors.New("reported")

// Main runs the command and returns its exit status.
func Main() int {
	err := newRootCmd().ExecuteContext(context.Background())
	if err == nil {
		return 0
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, "odbcshim:", err)
	}
	return 1
}
