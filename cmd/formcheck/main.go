// Command formcheck validates form input against the built-in forms and
// rule files, prints their OpenAPI description and serves validation over
// HTTP.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, "formcheck:", err)
		}
		os.Exit(1)
	}
}
