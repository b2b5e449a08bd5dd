// internal/cliutil/probe.go
package cliutil

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Prober answers the file-system questions asked while options are resolved.
type Prober interface {
	// Readable returns nil if path can be opened for reading.
	Readable(path string) error
	// DirExists returns nil if path names an existing directory.
	DirExists(path string) error
}

// FSProber implements Prober on top of an afero file system.
type FSProber struct {
	Fs afero.Fs
}

// OS returns a prober backed by the real file system.
func OS() FSProber { return FSProber{Fs: afero.NewOsFs()} }

func (p FSProber) Readable(path string) error {
	f, err := p.Fs.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

func (p FSProber) DirExists(path string) error {
	ok, err := afero.DirExists(p.Fs, path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: not a directory", path)
	}
	return nil
}

// ParentDir returns the directory an output path would be created in.
func ParentDir(path string) string {
	return filepath.Dir(filepath.Clean(path))
}
