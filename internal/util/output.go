package util

import (
	"fmt"
	"os"

	"github.com/tably/tably/internal/config"
)

// Die is like fmt.Printf, but writes to stderr, adds a newline, and
// terminates the process.
func Die(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

// Panicf is a composition of fmt.Sprintf and panic.
func Panicf(format string, a ...interface{}) {
	panic(fmt.Sprintf(format, a...))
}

// ProgressMsg prints a progress message to stdout, unless --quiet was
// passed on the command line.
func ProgressMsg(msg string) {
	if !config.Quiet {
		fmt.Println("-->", msg)
	}
}
