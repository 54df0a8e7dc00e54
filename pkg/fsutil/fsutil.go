// Package fsutil selects a filesystem backend for the CLI front-ends.
// None of pkg/sbox, pkg/aes, pkg/metrics, pkg/analysis etc. import this
// package: the core performs no I/O (spec.md section 5). It exists purely so
// cmd/* can load S-box/block files through an afero.Fs, which keeps the CLI
// testable against an in-memory filesystem instead of the real one.
package fsutil

import (
	"fmt"

	"github.com/spf13/afero"
)

const (
	// OsType selects the real OS filesystem.
	OsType = "os"
	// MemType selects an in-memory filesystem.
	MemType = "mem"
)

var supportedTypes = []string{OsType, MemType}

// Get returns the afero.Fs backend named by kind.
func Get(kind string) (afero.Fs, error) {
	switch kind {
	case OsType:
		return afero.NewOsFs(), nil
	case MemType:
		return afero.NewMemMapFs(), nil
	}
	return nil, fmt.Errorf("fsutil: unknown filesystem type %q (supported: %v)", kind, supportedTypes)
}
