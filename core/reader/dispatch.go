package reader

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/Maestro/core/score"
	"github.com/FocuswithJustin/Maestro/internal/xmlrw"
)

// Format version bounds. Versions are encoded as major*100+minor.
const (
	// CurrentVersion is the newest format version this build reads.
	CurrentVersion = 410
	// MinVersion is the oldest format version this build reads.
	MinVersion = 114
	// modernVersion is the first version of the current-generation
	// format: complete persisted style, packaged excerpts.
	modernVersion = 400
	// abandoned300 is a format revision that was abandoned before
	// release and cannot be read.
	abandoned300 = 300
)

// rootTag is the document root element name.
const rootTag = "maestro"

// Strategy is one format-generation structural parser. Implementations
// consume the child elements of the root element and populate the
// document.
type Strategy interface {
	// Name identifies the strategy in diagnostics.
	Name() string
	// Parse consumes the root's children. A nil return means the
	// stream was exhausted without error.
	Parse(s *score.Score, e *xmlrw.Reader, ctx *Context) error
}

// StyleHook seeds default style values before structural parsing.
// Needed for formats that only persisted deltas from defaults.
type StyleHook interface {
	SeedDefaults()
}

// dispatchEntry pairs a version-range predicate with its strategy.
// Entries are evaluated in fixed priority order; the first match wins.
type dispatchEntry struct {
	matches  func(version int, testMode bool) bool
	strategy Strategy
}

// Options are the caller-supplied load knobs.
type Options struct {
	// IgnoreVersionError disables the version band checks, forcing a
	// best-effort parse of out-of-band documents.
	IgnoreVersionError bool
	// SkipImages skips registering embedded images in the image store.
	SkipImages bool
	// TestMode forces the previous-generation strategy and style
	// seeding regardless of document version.
	TestMode bool
}

// ScoreReader loads score documents, dispatching on format version.
type ScoreReader struct {
	opts  Options
	table []dispatchEntry
}

// NewScoreReader creates a reader with the standard strategy table.
func NewScoreReader(opts Options) *ScoreReader {
	return &ScoreReader{
		opts: opts,
		table: []dispatchEntry{
			{func(v int, _ bool) bool { return v <= 114 }, legacy114{}},
			{func(v int, _ bool) bool { return v <= 207 }, legacy206{}},
			{func(v int, tm bool) bool { return v < modernVersion || tm }, legacy302{}},
			{func(int, bool) bool { return true }, modern{}},
		},
	}
}

// parseVersion parses a "<major>.<minor>" version token into
// major*100+minor. Missing or non-numeric parts read as zero.
func parseVersion(attr string) int {
	major, minor, _ := strings.Cut(attr, ".")
	return atoi(major)*100 + atoi(minor)
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Read finds the root element, validates the document version, seeds
// default style when the format calls for it, and dispatches to the
// matching strategy. Returns ErrFileCorrupted with the stream's own
// diagnostic text when no root element is found.
func (r *ScoreReader) Read(s *score.Score, e *xmlrw.Reader, ctx *Context, hook StyleHook) error {
	for e.ReadNextStartElement() {
		if e.Name() != rootTag {
			e.Unknown()
			continue
		}

		version := parseVersion(e.Attribute("version"))
		s.SetVersion(version)

		if !ctx.IgnoreVersionError() {
			if version > CurrentVersion {
				return newLoadError(ErrFileTooNew, "")
			}
			if version < MinVersion {
				return newLoadError(ErrFileTooOld, "")
			}
			if version == abandoned300 {
				return newLoadError(ErrFileOld300Format, "")
			}
		}

		// Old formats only persisted style deltas, so the full
		// defaults table must be in place before their parse. Modern
		// documents carry their complete style.
		if hook != nil && (version < modernVersion || r.opts.TestMode) {
			hook.SeedDefaults()
		}

		var strategy Strategy
		for _, entry := range r.table {
			if entry.matches(version, r.opts.TestMode) {
				strategy = entry.strategy
				break
			}
		}

		err := strategy.Parse(s, e, ctx)

		// Loading a file is not a user edit.
		s.SetExcerptsChanged(false)
		s.SetAutosaveDirty(false)

		return err
	}

	return newLoadError(ErrFileCorrupted, e.ErrString())
}
