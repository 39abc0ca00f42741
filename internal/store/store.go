// Package store persists per-user render defaults between runs. The
// defaults live in a small TOML file; flags on the command line
// always take precedence over them.
package store

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tably/tably/internal/util"
)

func getStoreLocation() string {
	loc, ok := os.LookupEnv("TABLY_CONFIG")
	if ok {
		return loc
	}
	return ".tably/config.toml"
}

// Read loads the defaults file, returning zero defaults when the file
// does not exist.
func Read() Defaults {
	filename := getStoreLocation()

	var defaults Defaults
	if _, err := toml.DecodeFile(filename, &defaults); err != nil {
		if os.IsNotExist(err) {
			return Defaults{}
		}
		util.Die("%s: %s", filename, err)
	}
	return defaults
}

// Write saves the defaults file, creating its directory if needed.
func (d *Defaults) Write() {
	filename := getStoreLocation()

	filename, err := filepath.Abs(filename)
	if err != nil {
		util.Die("%s: %s", filename, err)
	}

	directory, _ := filepath.Split(filename)
	if err := os.MkdirAll(directory, 0777); err != nil {
		util.Die("%s: %s", directory, err)
	}

	content, err := toml.Marshal(*d)
	if err != nil {
		util.Panicf("store: toml.Marshal failed: %s", err)
	}

	util.TryWriteAtomic(filename, content)
}
