// Package style holds the score style table: named presentation values
// (page geometry, spacing, line widths) with a built-in defaults table.
//
// Persisted style files only carry values; formats older than 4.0 only
// persisted values that differ from defaults, so defaults must be
// seeded before parsing those documents (see SeedHook).
package style

import (
	"github.com/antchfx/xmlquery"

	"github.com/FocuswithJustin/Maestro/core/errors"
	"github.com/FocuswithJustin/Maestro/internal/xmlutil"
)

// defaults is the built-in style table. Values are stored in their
// lexical form; consumers interpret units.
var defaults = map[string]string{
	"pageWidth":               "210",
	"pageHeight":              "297",
	"pagePrintableWidth":      "190",
	"pageEvenTopMargin":       "15",
	"pageEvenBottomMargin":    "15",
	"pageOddTopMargin":        "15",
	"pageOddBottomMargin":     "15",
	"spatium":                 "1.75",
	"staffLineWidth":          "0.11",
	"barWidth":                "0.18",
	"doubleBarWidth":          "0.18",
	"stemWidth":               "0.10",
	"beamWidth":               "0.5",
	"minMeasureWidth":         "5.0",
	"measureSpacing":          "1.2",
	"smallNoteMag":            "0.7",
	"graceNoteMag":            "0.7",
	"concertPitch":            "0",
	"createMultiMeasureRests": "0",
	"minEmptyMeasures":        "2",
	"hideEmptyStaves":         "0",
	"showMeasureNumber":       "1",
	"chordSymbolFontSize":     "12",
	"lyricsOddFontSize":       "11",
	"lyricsEvenFontSize":      "11",
}

// Style is a mutable style table.
type Style struct {
	values map[string]string
}

// New creates an empty style table (no values set, not even defaults).
func New() *Style {
	return &Style{values: make(map[string]string)}
}

// Set stores a style value under the given ID.
func (s *Style) Set(id, value string) {
	s.values[id] = value
}

// Value returns the stored value for id, or "" when unset.
func (s *Style) Value(id string) string {
	return s.values[id]
}

// ValueOK returns the stored value and whether it is set.
func (s *Style) ValueOK(id string) (string, bool) {
	v, ok := s.values[id]
	return v, ok
}

// Len returns the number of set values.
func (s *Style) Len() int {
	return len(s.values)
}

// ApplyDefaults seeds the built-in default value for every style ID,
// overwriting nothing that is already set.
func (s *Style) ApplyDefaults() {
	for id, v := range defaults {
		if _, ok := s.values[id]; !ok {
			s.values[id] = v
		}
	}
}

// EqualsDefaults reports whether every set value matches the built-in
// defaults and nothing beyond the defaults table is set.
func (s *Style) EqualsDefaults() bool {
	if len(s.values) != len(defaults) {
		return false
	}
	for id, v := range s.values {
		if defaults[id] != v {
			return false
		}
	}
	return true
}

// Default returns the built-in default for a style ID, "" when unknown.
func Default(id string) string {
	return defaults[id]
}

// Read applies persisted style values from an XML blob. Values are the
// element children of the document's Style element: the tag is the
// style ID, the text is the value. An empty blob is a no-op.
func (s *Style) Read(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	root, err := xmlutil.Parse(data)
	if err != nil {
		return errors.NewParse("style", "", err.Error())
	}

	styleNode, err := xmlutil.FindOne(root, "//Style")
	if err != nil {
		return errors.NewParse("style", "", err.Error())
	}
	if styleNode == nil {
		return errors.NewParse("style", "", "no Style element")
	}

	for child := styleNode.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		s.Set(child.Data, child.InnerText())
	}
	return nil
}
