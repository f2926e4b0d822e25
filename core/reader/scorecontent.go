package reader

import (
	"fmt"
	"strconv"

	"github.com/FocuswithJustin/Maestro/core/chord"
	"github.com/FocuswithJustin/Maestro/core/score"
	"github.com/FocuswithJustin/Maestro/internal/logging"
	"github.com/FocuswithJustin/Maestro/internal/xmlrw"
)

// ReadScoreContent consumes the children of a Score element into the
// document. It is shared by the modern strategy and the excerpt
// assembler. Returns false when the stream or a structural check
// failed; the reader's error state carries the detail.
func ReadScoreContent(s *score.Score, e *xmlrw.Reader, ctx *Context) bool {
	for e.ReadNextStartElement() {
		switch e.Name() {
		case "Division":
			s.SetDivision(e.ReadInt(10))
		case "showInvisible":
			s.SetShowInvisible(e.ReadInt(10) != 0)
		case "Style":
			readInlineStyle(s, e)
		case "Part":
			readPart(s, e)
		case "Staff":
			if !readStaff(s, e, ctx) {
				return false
			}
		case "Measure":
			readMeasure(s, e)
		case "Harmony":
			readHarmony(s, e, ctx)
		case "Audio":
			s.SetAudio(&score.Audio{})
			e.SkipCurrentElement()
		case "Tracklist":
			readTracklist(e, ctx)
		case "name":
			// Excerpt documents persist their name inline; the
			// assembler prefers the container member name.
			e.ReadText()
		default:
			e.Unknown()
		}
	}
	return e.Err() == nil
}

func readInlineStyle(s *score.Score, e *xmlrw.Reader) {
	for e.ReadNextStartElement() {
		s.Style().Set(e.Name(), e.ReadText())
	}
}

func readPart(s *score.Score, e *xmlrw.Reader) {
	p := &score.Part{ID: e.Attribute("id")}
	for e.ReadNextStartElement() {
		switch e.Name() {
		case "name", "trackName":
			p.Name = e.ReadText()
		case "staves":
			p.Staves = e.ReadInt(10)
		default:
			e.Unknown()
		}
	}
	s.AddPart(p)
}

// readStaff reads one Staff element. A present but non-numeric id
// attribute is a structural defect and fails the parse.
func readStaff(s *score.Score, e *xmlrw.Reader, ctx *Context) bool {
	st := &score.Staff{}
	if raw, ok := e.AttributeOK("id"); ok {
		id, err := strconv.Atoi(raw)
		if err != nil {
			e.RaiseError(fmt.Sprintf("invalid staff id %q", raw))
			return false
		}
		st.ID = id
	}
	for e.ReadNextStartElement() {
		switch e.Name() {
		case "linkedTo":
			st.LinkID = e.ReadInt(10)
		default:
			e.Unknown()
		}
	}
	if st.LinkID != 0 {
		if master := ctx.Link(st.LinkID); master == nil {
			ctx.AddLink(st.LinkID, st)
		}
	}
	s.AddStaff(st)
	return true
}

func readMeasure(s *score.Score, e *xmlrw.Reader) {
	s.AddMeasure(&score.Measure{Index: len(s.Measures())})
	e.SkipCurrentElement()
}

// readHarmony reads one chord symbol occurrence. The raw name is
// always kept; symbol parsing is best effort.
func readHarmony(s *score.Score, e *xmlrw.Reader, ctx *Context) {
	h := &score.Harmony{}
	for e.ReadNextStartElement() {
		switch e.Name() {
		case "name":
			h.Name = e.ReadText()
		default:
			e.Unknown()
		}
	}
	if h.Name != "" {
		sym, err := chord.ParseSymbol(h.Name)
		if err != nil {
			logging.Warn("unparseable chord symbol",
				"load_id", ctx.LoadID(), "name", h.Name, "error", err)
		} else {
			h.Symbol = sym
		}
	}
	s.AddHarmony(h)
}

func readTracklist(e *xmlrw.Reader, ctx *Context) {
	for e.ReadNextStartElement() {
		switch e.Name() {
		case "track":
			src := atoi(e.Attribute("src"))
			dst := atoi(e.Attribute("dst"))
			ctx.MapTrack(src, dst)
			e.SkipCurrentElement()
		default:
			e.Unknown()
		}
	}
}
