package container

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/FocuswithJustin/Maestro/core/errors"
	"github.com/ulikunitz/xz"
)

// Format identifies the on-disk form of a score file.
type Format string

const (
	// FormatZip is a zip score package.
	FormatZip Format = "zip"
	// FormatPlain is an uncompressed single-document score file.
	FormatPlain Format = "plain"
	// FormatGzip is a gzip-compressed single-document score file.
	FormatGzip Format = "gzip"
	// FormatXZ is an xz-compressed single-document score file.
	FormatXZ Format = "xz"
)

// DetectFormat detects the on-disk format of a score file by magic bytes.
func DetectFormat(path string) (Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.NewIO("open", path, err)
	}
	defer file.Close()

	magic := make([]byte, 6)
	n, err := file.Read(magic)
	if err != nil && err != io.EOF {
		return "", errors.NewIO("read magic bytes", path, err)
	}
	if n < 2 {
		return "", errors.NewValidation("file", "too small to detect format")
	}

	// Zip magic (PK)
	if magic[0] == 'P' && magic[1] == 'K' {
		return FormatZip, nil
	}

	// Gzip magic (1f 8b)
	if magic[0] == 0x1f && magic[1] == 0x8b {
		return FormatGzip, nil
	}

	// XZ magic (fd 37 7a 58 5a 00)
	if n >= 6 && magic[0] == 0xfd && magic[1] == 0x37 && magic[2] == 0x7a &&
		magic[3] == 0x58 && magic[4] == 0x5a && magic[5] == 0x00 {
		return FormatXZ, nil
	}

	return FormatPlain, nil
}

// plainAccessor exposes a single-document score file (optionally
// compressed) through the Accessor interface. Such files carry only a
// main score document: style, chord list, images, excerpts and audio
// members are all absent.
type plainAccessor struct {
	path   string
	data   []byte
	opened bool
}

// OpenPlain opens a single-document score file, decompressing it when
// the given format says so.
func OpenPlain(path string, format Format) (Accessor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}

	var data []byte
	switch format {
	case FormatPlain:
		data = raw
	case FormatGzip:
		gz, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		defer gz.Close()
		data, err = io.ReadAll(gz)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
	case FormatXZ:
		xr, err := xz.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		data, err = io.ReadAll(xr)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
	default:
		return nil, errors.NewUnsupported("format", string(format))
	}

	return &plainAccessor{path: path, data: data, opened: true}, nil
}

// Open opens a score file of any supported format, auto-detected.
func Open(path string) (Accessor, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if format == FormatZip {
		return OpenZip(path)
	}
	return OpenPlain(path, format)
}

func (a *plainAccessor) Opened() bool     { return a.opened }
func (a *plainAccessor) FilePath() string { return a.path }

func (a *plainAccessor) ReadScoreFile() ([]byte, error) { return a.data, nil }

func (a *plainAccessor) ReadStyleFile() ([]byte, error)     { return nil, nil }
func (a *plainAccessor) ReadChordListFile() ([]byte, error) { return nil, nil }
func (a *plainAccessor) ReadAudioFile() ([]byte, error)     { return nil, nil }

func (a *plainAccessor) ImageFileNames() []string { return nil }
func (a *plainAccessor) ExcerptNames() []string   { return nil }

func (a *plainAccessor) ReadImageFile(name string) ([]byte, error) {
	return nil, nil
}

func (a *plainAccessor) ReadExcerptFile(name string) ([]byte, error) {
	return nil, nil
}

func (a *plainAccessor) ReadExcerptStyleFile(name string) ([]byte, error) {
	return nil, nil
}
