// Package testdata locates the grammar files tests are run against.
// Fixtures live in the grammars/ directory next to this file.
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// GrammarPath returns the absolute path of grammar fixture name. The path does
// not depend on the working directory of the test binary.
func GrammarPath(name string) string {
	return filepath.Join(grammarDir(), name)
}

// GrammarReader loads grammar fixture name into memory.
func GrammarReader(name string) (io.Reader, error) {
	src, err := os.ReadFile(GrammarPath(name))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(src), nil
}

func grammarDir() string {
	_, self, _, ok := runtime.Caller(0)
	if !ok {
		panic("testdata: cannot locate grammar fixtures")
	}
	return filepath.Join(filepath.Dir(self), "grammars")
}
