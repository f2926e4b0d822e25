// Package score defines the in-memory score document model populated by
// the reader: the master document, its subordinate excerpt documents,
// parts, staves, measures and the audio payload.
//
// A master document exclusively owns its excerpts and their subordinate
// documents; subordinate documents hold a back-reference to the master
// but never outlive it.
package score

import (
	"github.com/FocuswithJustin/Maestro/core/chord"
	"github.com/FocuswithJustin/Maestro/core/style"
)

// Part is one instrument/part entry of a score.
type Part struct {
	ID     string
	Name   string
	Staves int
}

// Measure is one measure of a score. Linked points at the measure of
// the master document that this (excerpt) measure follows; nil in
// master documents.
type Measure struct {
	Index  int
	Linked *Measure
}

// Staff is one staff of a score. LinkID is the persisted cross-document
// link identifier, 0 when the staff is not linked.
type Staff struct {
	ID     int
	LinkID int
}

// Harmony is one chord symbol occurrence in the score.
type Harmony struct {
	Name   string
	Symbol *chord.Symbol
}

// Audio is an embedded audio payload slot.
type Audio struct {
	data []byte
}

// Data returns the audio payload bytes.
func (a *Audio) Data() []byte { return a.data }

// SetData replaces the audio payload bytes.
func (a *Audio) SetData(data []byte) { a.data = data }

// Score is a score document: either a master document or a subordinate
// excerpt document.
type Score struct {
	master *Score // nil for master documents

	version         int // major*100+minor
	programVersion  string
	programRevision int

	style     *style.Style
	chordList *chord.List

	division      int
	showInvisible bool

	parts     []*Part
	staves    []*Staff
	measures  []*Measure
	harmonies []*Harmony

	excerpts []*Excerpt
	audio    *Audio

	excerptsChanged bool
	autosaveDirty   bool
}

// NewMaster creates an empty master document.
func NewMaster() *Score {
	return &Score{
		style:     style.New(),
		chordList: chord.NewList(),
	}
}

// CreateScore creates a subordinate document owned by (and linked back
// to) this master document.
func (s *Score) CreateScore() *Score {
	sub := NewMaster()
	sub.master = s
	return sub
}

// IsMaster reports whether this is a master document.
func (s *Score) IsMaster() bool { return s.master == nil }

// Master returns the owning master document, nil for masters.
func (s *Score) Master() *Score { return s.master }

// Version returns the detected format version as major*100+minor.
func (s *Score) Version() int { return s.version }

// SetVersion records the detected format version.
func (s *Score) SetVersion(v int) { s.version = v }

// ProgramVersion returns the writing program's version string.
func (s *Score) ProgramVersion() string { return s.programVersion }

// SetProgramVersion records the writing program's version string.
func (s *Score) SetProgramVersion(v string) { s.programVersion = v }

// ProgramRevision returns the writing program's revision number.
func (s *Score) ProgramRevision() int { return s.programRevision }

// SetProgramRevision records the writing program's revision number.
func (s *Score) SetProgramRevision(r int) { s.programRevision = r }

// Style returns the document's style table.
func (s *Score) Style() *style.Style { return s.style }

// ChordList returns the document's chord list.
func (s *Score) ChordList() *chord.List { return s.chordList }

// CheckChordList guarantees a chord vocabulary exists, loading the
// built-in list when the document has none.
func (s *Score) CheckChordList() { s.chordList.EnsureDefaults() }

// Division returns the rhythmic division (ticks per quarter note).
func (s *Score) Division() int { return s.division }

// SetDivision records the rhythmic division.
func (s *Score) SetDivision(d int) { s.division = d }

// ShowInvisible returns whether invisible elements are displayed.
func (s *Score) ShowInvisible() bool { return s.showInvisible }

// SetShowInvisible records the invisible-elements display flag.
func (s *Score) SetShowInvisible(v bool) { s.showInvisible = v }

// AddPart appends a part.
func (s *Score) AddPart(p *Part) { s.parts = append(s.parts, p) }

// Parts returns the document's parts in order.
func (s *Score) Parts() []*Part { return s.parts }

// AddStaff appends a staff.
func (s *Score) AddStaff(st *Staff) { s.staves = append(s.staves, st) }

// Staves returns the document's staves in order.
func (s *Score) Staves() []*Staff { return s.staves }

// AddMeasure appends a measure.
func (s *Score) AddMeasure(m *Measure) { s.measures = append(s.measures, m) }

// Measures returns the document's measures in order.
func (s *Score) Measures() []*Measure { return s.measures }

// AddHarmony appends a chord symbol occurrence.
func (s *Score) AddHarmony(h *Harmony) { s.harmonies = append(s.harmonies, h) }

// Harmonies returns the document's chord symbol occurrences in order.
func (s *Score) Harmonies() []*Harmony { return s.harmonies }

// LinkMeasures aligns this document's measures with the master
// document's measure sequence, positionally. Measures beyond the
// master's length stay unlinked.
func (s *Score) LinkMeasures(master *Score) {
	for i, m := range s.measures {
		if i >= len(master.measures) {
			break
		}
		m.Linked = master.measures[i]
	}
}

// AddExcerpt registers a completed excerpt on the master document.
// The excerpt change flag is untouched so that load-time registration
// does not mark the document edited.
func (s *Score) AddExcerpt(ex *Excerpt) {
	s.excerpts = append(s.excerpts, ex)
}

// Excerpts returns the registered excerpts in registration order.
func (s *Score) Excerpts() []*Excerpt { return s.excerpts }

// Audio returns the audio payload slot, nil when the document declares none.
func (s *Score) Audio() *Audio { return s.audio }

// SetAudio installs the audio payload slot.
func (s *Score) SetAudio(a *Audio) { s.audio = a }

// ExcerptsChanged reports whether excerpts changed since the last save.
func (s *Score) ExcerptsChanged() bool { return s.excerptsChanged }

// SetExcerptsChanged sets the excerpt change flag.
func (s *Score) SetExcerptsChanged(v bool) { s.excerptsChanged = v }

// AutosaveDirty reports whether the document needs autosaving.
func (s *Score) AutosaveDirty() bool { return s.autosaveDirty }

// SetAutosaveDirty sets the autosave flag.
func (s *Score) SetAutosaveDirty(v bool) { s.autosaveDirty = v }
