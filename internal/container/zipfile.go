package container

import (
	"archive/zip"
	"io"
	"strings"

	"github.com/FocuswithJustin/Maestro/core/errors"
)

// zipAccessor reads score packages (zip archives of named members).
type zipAccessor struct {
	path   string
	zr     *zip.Reader
	closer io.Closer
	opened bool
}

// OpenZip opens a score package at the given path.
func OpenZip(path string) (Accessor, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	return &zipAccessor{path: path, zr: &r.Reader, closer: r, opened: true}, nil
}

// NewZipAccessor wraps an already-open zip reader (e.g. over an
// in-memory package) in an Accessor.
func NewZipAccessor(path string, zr *zip.Reader) Accessor {
	return &zipAccessor{path: path, zr: zr, opened: true}
}

// Close releases the underlying archive, if this accessor owns one.
func (a *zipAccessor) Close() error {
	a.opened = false
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}

func (a *zipAccessor) Opened() bool     { return a.opened }
func (a *zipAccessor) FilePath() string { return a.path }

// readMember returns a member's bytes, or (nil, nil) when absent.
func (a *zipAccessor) readMember(name string) ([]byte, error) {
	name = normalizeMember(name)
	for _, f := range a.zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, errors.NewIO("open member", name, err)
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				return nil, errors.NewIO("read member", name, err)
			}
			return data, nil
		}
	}
	return nil, nil
}

func (a *zipAccessor) ReadScoreFile() ([]byte, error)     { return a.readMember(ScoreMember) }
func (a *zipAccessor) ReadStyleFile() ([]byte, error)     { return a.readMember(StyleMember) }
func (a *zipAccessor) ReadChordListFile() ([]byte, error) { return a.readMember(ChordListMember) }
func (a *zipAccessor) ReadAudioFile() ([]byte, error)     { return a.readMember(AudioMember) }

// ImageFileNames enumerates image members in package order.
func (a *zipAccessor) ImageFileNames() []string {
	var names []string
	for _, f := range a.zr.File {
		if rest, ok := strings.CutPrefix(f.Name, ImagesPrefix); ok && rest != "" {
			names = append(names, rest)
		}
	}
	return names
}

func (a *zipAccessor) ReadImageFile(name string) ([]byte, error) {
	return a.readMember(ImagesPrefix + name)
}

// ExcerptNames enumerates excerpt names in package order, one per
// Excerpts/<name>/ directory, first member wins.
func (a *zipAccessor) ExcerptNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, f := range a.zr.File {
		rest, ok := strings.CutPrefix(f.Name, ExcerptsPrefix)
		if !ok {
			continue
		}
		name, _, ok := strings.Cut(rest, "/")
		if !ok || name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func (a *zipAccessor) ReadExcerptFile(name string) ([]byte, error) {
	return a.readMember(excerptMember(name))
}

func (a *zipAccessor) ReadExcerptStyleFile(name string) ([]byte, error) {
	return a.readMember(excerptStyleMember(name))
}
