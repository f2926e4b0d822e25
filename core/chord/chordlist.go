// Package chord holds the chord vocabulary of a score: the chord list
// (chord IDs to quality names, read from the package's chord list file
// or fallen back to built-ins) and a chord symbol parser.
package chord

import (
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/FocuswithJustin/Maestro/core/errors"
	"github.com/FocuswithJustin/Maestro/internal/xmlutil"
)

// Entry is one chord description in the list.
type Entry struct {
	// ID is the stable chord ID persisted in documents.
	ID int
	// Name is the quality suffix rendered after the root, e.g. "m7b5".
	// The empty name is the major triad.
	Name string
}

// builtinEntries is the default chord vocabulary, used when a score
// package carries no chord list of its own.
var builtinEntries = []Entry{
	{ID: 1, Name: ""},
	{ID: 2, Name: "m"},
	{ID: 3, Name: "7"},
	{ID: 4, Name: "maj7"},
	{ID: 5, Name: "m7"},
	{ID: 6, Name: "m7b5"},
	{ID: 7, Name: "dim"},
	{ID: 8, Name: "aug"},
	{ID: 9, Name: "sus4"},
	{ID: 10, Name: "6"},
	{ID: 11, Name: "m6"},
	{ID: 12, Name: "9"},
	{ID: 13, Name: "m9"},
	{ID: 14, Name: "13"},
}

// List is a chord list keyed by chord ID.
type List struct {
	entries map[int]Entry
	order   []int
	custom  bool
}

// NewList creates an empty chord list.
func NewList() *List {
	return &List{entries: make(map[int]Entry)}
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Custom reports whether the list was read from a persisted blob
// rather than built-in defaults.
func (l *List) Custom() bool { return l.custom }

// Entry returns the entry for a chord ID.
func (l *List) Entry(id int) (Entry, bool) {
	e, ok := l.entries[id]
	return e, ok
}

// Entries returns all entries in list order.
func (l *List) Entries() []Entry {
	out := make([]Entry, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.entries[id])
	}
	return out
}

func (l *List) add(e Entry) {
	if _, exists := l.entries[e.ID]; !exists {
		l.order = append(l.order, e.ID)
	}
	l.entries[e.ID] = e
}

// EnsureDefaults loads the built-in chord vocabulary when the list is
// empty. A list already read from a blob is left alone.
func (l *List) EnsureDefaults() {
	if len(l.entries) > 0 {
		return
	}
	for _, e := range builtinEntries {
		l.add(e)
	}
}

// Read replaces the list with entries from an XML chord list blob.
// An empty blob is a no-op. Entries without a numeric id are skipped.
func (l *List) Read(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	root, err := xmlutil.Parse(data)
	if err != nil {
		return errors.NewParse("chord list", "", err.Error())
	}

	chords, err := xmlutil.Query(root, "//chord")
	if err != nil {
		return errors.NewParse("chord list", "", err.Error())
	}
	if len(chords) == 0 {
		return errors.NewParse("chord list", "", "no chord entries")
	}

	for _, node := range chords {
		id, err := strconv.Atoi(xmlutil.Attr(node, "id"))
		if err != nil {
			continue
		}
		name := ""
		if n := findChild(node, "name"); n != nil {
			name = n.InnerText()
		}
		l.add(Entry{ID: id, Name: name})
	}
	l.custom = true
	return nil
}

func findChild(n *xmlquery.Node, tag string) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == tag {
			return c
		}
	}
	return nil
}
