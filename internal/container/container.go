// Package container implements access to packaged score files.
//
// A score package (.mzp) is a zip archive of named members: the main
// score document, an optional style file, an optional chord list,
// embedded images, per-excerpt documents and styles, and an optional
// audio payload. A score can also live outside a package as a single
// XML document, optionally gzip- or xz-compressed; both forms are
// exposed through the same Accessor interface.
//
// Readers return empty data (not an error) for members that are absent
// from the package; callers treat an empty blob as "nothing persisted".
package container

import (
	"path"
	"strings"
)

// Member names and prefixes inside a score package.
const (
	ScoreMember     = "score.xml"
	StyleMember     = "score_style.xml"
	ChordListMember = "chordlist.xml"
	AudioMember     = "audio.dat"
	ImagesPrefix    = "Pictures/"
	ExcerptsPrefix  = "Excerpts/"
)

// Accessor exposes the named blobs of an opened score file.
//
// All Read methods return (nil, nil) when the member is absent; a
// non-nil error indicates a real I/O or decompression failure.
type Accessor interface {
	// Opened reports whether the file was opened successfully.
	Opened() bool

	// FilePath returns the path the accessor was opened from.
	FilePath() string

	// ReadScoreFile returns the main score document.
	ReadScoreFile() ([]byte, error)

	// ReadStyleFile returns the master style blob.
	ReadStyleFile() ([]byte, error)

	// ReadChordListFile returns the chord list blob.
	ReadChordListFile() ([]byte, error)

	// ReadAudioFile returns the audio payload blob.
	ReadAudioFile() ([]byte, error)

	// ImageFileNames enumerates embedded image names in package order.
	ImageFileNames() []string

	// ReadImageFile returns the image blob for the given name.
	ReadImageFile(name string) ([]byte, error)

	// ExcerptNames enumerates excerpt names in package order.
	ExcerptNames() []string

	// ReadExcerptFile returns the score document of the named excerpt.
	ReadExcerptFile(name string) ([]byte, error)

	// ReadExcerptStyleFile returns the style blob of the named excerpt.
	ReadExcerptStyleFile(name string) ([]byte, error)
}

// excerptMember returns the package member holding an excerpt's document.
func excerptMember(name string) string {
	return path.Join(ExcerptsPrefix, name, name+".xml")
}

// excerptStyleMember returns the package member holding an excerpt's style.
func excerptStyleMember(name string) string {
	return path.Join(ExcerptsPrefix, name, name+"_style.xml")
}

// normalizeMember canonicalizes a member path for lookup.
func normalizeMember(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	return strings.TrimPrefix(name, "/")
}
