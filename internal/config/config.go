// Package config contains global variables that are set according to
// the command line. They can be accessed from anywhere within the
// command implementations.
package config

// Quiet is true if --quiet was passed on the command line.
var Quiet bool
