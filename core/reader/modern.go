package reader

import (
	"github.com/FocuswithJustin/Maestro/core/score"
	"github.com/FocuswithJustin/Maestro/internal/xmlrw"
)

// modern parses current-generation documents (version >= 400).
type modern struct{}

func (modern) Name() string { return "modern" }

func (modern) Parse(s *score.Score, e *xmlrw.Reader, ctx *Context) error {
	s.CheckChordList()

	for e.ReadNextStartElement() {
		switch e.Name() {
		case "programVersion":
			s.SetProgramVersion(e.ReadText())
		case "programRevision":
			s.SetProgramRevision(e.ReadInt(16))
		case "Score":
			if !ReadScoreContent(s, e, ctx) {
				if e.CustomError() {
					return newLoadError(ErrFileCriticallyCorrupted, e.ErrString())
				}
				return newLoadError(ErrFileBadFormat, e.ErrString())
			}
		case "Revision":
			// Revision history is not loaded.
			e.SkipCurrentElement()
		default:
			e.Unknown()
		}
	}
	return nil
}
