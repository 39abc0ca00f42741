// Package main implements the tably binary. It is the only
// public-facing entry point, since tably's Go packages are all
// internal.
package main

import "github.com/tably/tably/internal/cli"

// Main entry point for the tably binary.
func main() {
	cli.DoCLI()
}
