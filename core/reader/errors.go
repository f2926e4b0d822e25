package reader

import "errors"

// Load outcome kinds. Each failure is detected at its point of origin
// and returned immediately; none are retried or downgraded to warnings.
var (
	// ErrFileOpen indicates the container was not opened.
	ErrFileOpen = errors.New("file open error")
	// ErrFileTooNew indicates the document version exceeds the newest
	// version this build supports.
	ErrFileTooNew = errors.New("file is too new for this version")
	// ErrFileTooOld indicates the document version is below the oldest
	// supported version.
	ErrFileTooOld = errors.New("file is too old")
	// ErrFileOld300Format indicates the abandoned 3.00 intermediate
	// format, which cannot be read.
	ErrFileOld300Format = errors.New("unreadable 3.00 beta format")
	// ErrFileCorrupted indicates the root element was never found.
	ErrFileCorrupted = errors.New("file corrupted")
	// ErrFileBadFormat indicates the score content parse failed.
	ErrFileBadFormat = errors.New("bad file format")
	// ErrFileCriticallyCorrupted indicates the score content parse
	// failed with an application-level error raised by the parser.
	ErrFileCriticallyCorrupted = errors.New("file critically corrupted")
)

// LoadError is a load failure: a kind (one of the sentinels above) plus
// an optional diagnostic message, the underlying stream's error text or
// a file path where applicable.
type LoadError struct {
	Kind error
	Msg  string
}

func (e *LoadError) Error() string {
	if e.Msg != "" {
		return e.Kind.Error() + ": " + e.Msg
	}
	return e.Kind.Error()
}

func (e *LoadError) Unwrap() error { return e.Kind }

func newLoadError(kind error, msg string) *LoadError {
	return &LoadError{Kind: kind, Msg: msg}
}
