// Package regstore keeps the contents of a simulated register file in a gob
// encoded file, so a simulated board survives process restarts.
package regstore

import (
	"bytes"
	"encoding/gob"
	"io/ioutil"
	"os"
	"sync"

	"github.com/BertoldVdb/mcfgpio/regio"
)

type File struct {
	sync.Mutex

	// Filename is the name of the file holding the snapshot
	Filename string
	// Sim is the register file that is loaded and saved
	Sim *regio.Sim

	buffer bytes.Buffer
}

type Error string

func (e Error) Error() string { return string(e) }

// ErrorNoFilename is returned when trying to load or save without a file
const ErrorNoFilename = Error("Filename not specified")

// Load restores the register file from disk. A missing file is reported with
// an error for which os.IsNotExist is true, the Sim is left untouched.
func (f *File) Load() error {
	f.Lock()
	defer f.Unlock()

	if f.Filename == "" {
		return ErrorNoFilename
	}

	file, err := os.Open(f.Filename)
	if err != nil {
		return err
	}
	defer file.Close()

	f.buffer.Truncate(0)
	if _, err := f.buffer.ReadFrom(file); err != nil {
		return err
	}

	var snap regio.Snapshot
	if err := gob.NewDecoder(&f.buffer).Decode(&snap); err != nil {
		return err
	}

	f.Sim.Restore(snap)
	return nil
}

// Save writes the register file to disk. The file is replaced atomically.
func (f *File) Save() error {
	f.Lock()
	defer f.Unlock()

	if f.Filename == "" {
		return ErrorNoFilename
	}

	f.buffer.Truncate(0)
	if err := gob.NewEncoder(&f.buffer).Encode(f.Sim.Snapshot()); err != nil {
		return err
	}

	tmpName := f.Filename + ".tmp"
	if err := ioutil.WriteFile(tmpName, f.buffer.Bytes(), 0600); err != nil {
		return err
	}

	return os.Rename(tmpName, f.Filename)
}
