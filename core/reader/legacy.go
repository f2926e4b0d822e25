package reader

import (
	"github.com/FocuswithJustin/Maestro/core/score"
	"github.com/FocuswithJustin/Maestro/internal/xmlrw"
)

// legacyStyleMigrations maps style IDs that were renamed between the
// legacy and current format generations. Values read under a legacy ID
// are stored under the modern ID and the migration is recorded on the
// context for the caller's settings compatibility pass.
var legacyStyleMigrations = map[string]string{
	"systemDistance":   "minSystemDistance",
	"pageFillLimit":    "pageMaxSystemDistance",
	"chordNameStyle":   "chordSymbolStyle",
	"displayInConcert": "concertPitch",
}

// parseLegacyBody is the shared body walker for pre-400 documents.
// Legacy files persisted only style deltas and a flat Score body, so
// the structural walk matches the modern one with style migration
// layered on top.
func parseLegacyBody(s *score.Score, e *xmlrw.Reader, ctx *Context) error {
	s.CheckChordList()

	for e.ReadNextStartElement() {
		switch e.Name() {
		case "programVersion":
			s.SetProgramVersion(e.ReadText())
		case "programRevision":
			s.SetProgramRevision(e.ReadInt(16))
		case "Style":
			readLegacyStyle(s, e, ctx)
		case "Score":
			if !ReadScoreContent(s, e, ctx) {
				if e.CustomError() {
					return newLoadError(ErrFileCriticallyCorrupted, e.ErrString())
				}
				return newLoadError(ErrFileBadFormat, e.ErrString())
			}
		default:
			e.Unknown()
		}
	}
	return nil
}

func readLegacyStyle(s *score.Score, e *xmlrw.Reader, ctx *Context) {
	for e.ReadNextStartElement() {
		id := e.Name()
		if modern, ok := legacyStyleMigrations[id]; ok {
			ctx.RecordStyleMigration(id, modern)
			id = modern
		}
		s.Style().Set(id, e.ReadText())
	}
}

// legacy114 parses first-generation documents (version <= 114).
type legacy114 struct{}

func (legacy114) Name() string { return "legacy-114" }

func (legacy114) Parse(s *score.Score, e *xmlrw.Reader, ctx *Context) error {
	return parseLegacyBody(s, e, ctx)
}

// legacy206 parses second-generation documents (115..207).
type legacy206 struct{}

func (legacy206) Name() string { return "legacy-206" }

func (legacy206) Parse(s *score.Score, e *xmlrw.Reader, ctx *Context) error {
	return parseLegacyBody(s, e, ctx)
}

// legacy302 parses third-generation documents (208..399). Also forced
// for any version in test mode.
type legacy302 struct{}

func (legacy302) Name() string { return "legacy-302" }

func (legacy302) Parse(s *score.Score, e *xmlrw.Reader, ctx *Context) error {
	return parseLegacyBody(s, e, ctx)
}
