// Package attachment resolves the optional downloadable CV file.
//
// The file may or may not exist when a page is rendered. Absence is an
// ordinary outcome, not a failure: Resolve never panics and never returns an
// error, it reports unavailability through Outcome.Err.
package attachment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

// ErrUnavailable marks an attachment that could not be served at check time.
var ErrUnavailable = errors.New("attachment unavailable")

// Ref points at the optional file.
type Ref struct {
	Path string
}

// NewRef resolves name against dir unless name is already absolute.
func NewRef(dir, name string) Ref {
	if filepath.IsAbs(name) || dir == "" {
		return Ref{Path: name}
	}
	return Ref{Path: filepath.Join(dir, name)}
}

// Name is the base name offered to the browser on download.
func (r Ref) Name() string {
	return filepath.Base(r.Path)
}

// Outcome is the result of a single existence check.
type Outcome struct {
	Available bool
	Data      []byte
	Filename  string
	MediaType string
	// Err wraps ErrUnavailable when Available is false.
	Err error
}

// Size is the number of bytes carried by the outcome.
func (o Outcome) Size() int {
	return len(o.Data)
}

// SizeLabel is the human readable size, e.g. "84 kB". Empty when unavailable.
func (o Outcome) SizeLabel() string {
	if !o.Available {
		return ""
	}
	return humanize.Bytes(uint64(len(o.Data)))
}

// Resolve reads the referenced file if it exists and is a regular file. The
// check happens on every call; nothing is cached between calls.
func Resolve(ref Ref) Outcome {
	out := Outcome{Filename: ref.Name()}

	fi, err := os.Stat(ref.Path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		out.Err = fmt.Errorf("%w: %s does not exist", ErrUnavailable, ref.Path)
		return out
	case err != nil:
		out.Err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		return out
	case !fi.Mode().IsRegular():
		// FIFOs and devices would block or never end.
		out.Err = fmt.Errorf("%w: %s is not a regular file (%s)", ErrUnavailable, ref.Path, fi.Mode().Type())
		return out
	}

	data, err := os.ReadFile(ref.Path)
	if err != nil {
		out.Err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		return out
	}

	out.Available = true
	out.Data = data
	out.MediaType = mimetype.Detect(data).String()
	return out
}
