package reader

import (
	"github.com/FocuswithJustin/Maestro/core/score"
	"github.com/FocuswithJustin/Maestro/core/style"
	"github.com/FocuswithJustin/Maestro/internal/container"
	"github.com/FocuswithJustin/Maestro/internal/logging"
	"github.com/FocuswithJustin/Maestro/internal/xmlrw"
)

// readExcerpts assembles every packaged excerpt into the master
// document. Excerpt failures are logged and the excerpt is registered
// anyway; they never change the outcome of the load.
func readExcerpts(master *score.Score, acc container.Accessor, masterCtx *Context) {
	for _, name := range acc.ExcerptNames() {
		ex := score.NewExcerpt(master)
		ex.SetName(name)

		sub := master.CreateScore()
		// Excerpt documents persist style deltas only.
		style.NewSeedHook(sub.Style()).SeedDefaults()

		if data, err := acc.ReadExcerptStyleFile(name); err != nil {
			logging.Warn("excerpt style unreadable",
				"load_id", masterCtx.LoadID(), "excerpt", name, "error", err)
		} else if len(data) > 0 {
			if err := sub.Style().Read(data); err != nil {
				logging.Warn("excerpt style unparseable",
					"load_id", masterCtx.LoadID(), "excerpt", name, "error", err)
			}
		}

		ctx := NewContext(sub)
		ctx.InitLinks(masterCtx)

		data, err := acc.ReadExcerptFile(name)
		if err != nil {
			logging.Warn("excerpt unreadable",
				"load_id", masterCtx.LoadID(), "excerpt", name, "error", err)
		} else {
			e := xmlrw.New(data)
			e.SetDocName(container.ExcerptsPrefix + name)
			e.SetContext(ctx)
			if err := readModernDocument(sub, e, ctx); err != nil {
				logging.Warn("excerpt parse failed",
					"load_id", masterCtx.LoadID(), "excerpt", name, "error", err)
			}
		}

		sub.LinkMeasures(master)
		ex.SetTracksMapping(ctx.Tracks())
		ex.SetExcerptScore(sub)
		master.AddExcerpt(ex)
	}
}

// readModernDocument parses a complete excerpt document with the
// modern strategy. Excerpts are only packaged by modern writers, so
// legacy dispatch never applies.
func readModernDocument(s *score.Score, e *xmlrw.Reader, ctx *Context) error {
	for e.ReadNextStartElement() {
		if e.Name() != rootTag {
			e.Unknown()
			continue
		}
		s.SetVersion(parseVersion(e.Attribute("version")))
		return modern{}.Parse(s, e, ctx)
	}
	return newLoadError(ErrFileCorrupted, e.ErrString())
}
