// Package reader loads score documents from their container or
// single-file forms, dispatching on format version and enforcing the
// load error taxonomy.
package reader

import (
	"github.com/FocuswithJustin/Maestro/core/score"
	"github.com/FocuswithJustin/Maestro/core/style"
	"github.com/FocuswithJustin/Maestro/internal/container"
	"github.com/FocuswithJustin/Maestro/internal/imagestore"
	"github.com/FocuswithJustin/Maestro/internal/logging"
	"github.com/FocuswithJustin/Maestro/internal/xmlrw"
)

// Load reads the document behind the accessor into the master score.
// Auxiliary blobs (style, chord list, images, audio) are applied around
// the main parse; excerpts are assembled only when the main parse
// succeeded on a current-generation document. The returned
// SettingsCompat carries migration data accumulated during legacy
// parsing and is valid even when the load failed.
func Load(master *score.Score, acc container.Accessor, images imagestore.Store, opts Options) (SettingsCompat, error) {
	if !acc.Opened() {
		return SettingsCompat{}, newLoadError(ErrFileOpen, acc.FilePath())
	}

	ctx := NewContext(master)
	ctx.SetIgnoreVersionError(opts.IgnoreVersionError)

	log := logging.GetLogger().With("load_id", ctx.LoadID(), "path", acc.FilePath())

	if data, err := acc.ReadStyleFile(); err != nil {
		log.Warn("style member unreadable", "error", err)
	} else if len(data) > 0 {
		if err := master.Style().Read(data); err != nil {
			log.Warn("style member unparseable", "error", err)
		}
	}

	if data, err := acc.ReadChordListFile(); err != nil {
		log.Warn("chord list member unreadable", "error", err)
	} else if len(data) > 0 {
		if err := master.ChordList().Read(data); err != nil {
			log.Warn("chord list member unparseable", "error", err)
		}
	}

	if !opts.SkipImages && images != nil {
		for _, name := range acc.ImageFileNames() {
			data, err := acc.ReadImageFile(name)
			if err != nil {
				log.Warn("image member unreadable", "image", name, "error", err)
				continue
			}
			if err := images.Add(name, data); err != nil {
				log.Warn("image not registered", "image", name, "error", err)
			}
		}
	}

	data, err := acc.ReadScoreFile()
	if err != nil {
		return ctx.TakeSettingsCompat(), newLoadError(ErrFileCorrupted, err.Error())
	}

	e := xmlrw.New(data)
	e.SetDocName(container.ScoreMember)
	e.SetContext(ctx)

	r := NewScoreReader(opts)
	ret := r.Read(master, e, ctx, style.NewSeedHook(master.Style()))

	if ret == nil && master.Version() >= modernVersion {
		readExcerpts(master, acc, ctx)
	}

	if master.Audio() != nil {
		if blob, err := acc.ReadAudioFile(); err != nil {
			log.Warn("audio member unreadable", "error", err)
		} else if len(blob) > 0 {
			master.Audio().SetData(blob)
		}
	}

	return ctx.TakeSettingsCompat(), ret
}

// LoadFile opens the file at path (container or single-document form,
// auto-detected) and loads it.
func LoadFile(master *score.Score, path string, images imagestore.Store, opts Options) (SettingsCompat, error) {
	acc, err := container.Open(path)
	if err != nil {
		return SettingsCompat{}, newLoadError(ErrFileOpen, path)
	}
	if closer, ok := acc.(interface{ Close() error }); ok {
		defer closer.Close()
	}
	return Load(master, acc, images, opts)
}
