// Package main implements lingoctl, an offline tool for reviewing a
// vocabulary deck stored in a JSON snapshot file.
package main

import (
	"fmt"
	"os"
	"time"
)

func main() {
	cmd := newRootCmd(time.Now)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
