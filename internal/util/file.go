package util

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"
)

// TryWriteAtomic writes contents to filename atomically, falling back
// to a plain write when the atomic rename is not possible (for
// example across filesystems). Failure of both terminates the
// process.
func TryWriteAtomic(filename string, contents []byte) {
	if err1 := atomic.WriteFile(filename, bytes.NewReader(contents)); err1 != nil {
		if err2 := os.WriteFile(filename, contents, 0666); err2 != nil {
			Die("%s: %s; on non-atomic retry: %s", filename, err1, err2)
		}
	}
}

// FileExists reports whether filename exists, terminating the process
// on any stat error other than non-existence.
func FileExists(filename string) bool {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return false
	} else if err != nil {
		Die("%s: %s", filename, err)
		return false
	} else {
		return true
	}
}
