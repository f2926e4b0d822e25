package chord

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/Maestro/core/errors"
)

// Symbol is a parsed chord symbol, e.g. "C#m7b5/Eb".
type Symbol struct {
	// Root is the root note letter (A-G).
	Root string `json:"root"`

	// RootAccidental is "#" or "b", empty for naturals.
	RootAccidental string `json:"root_accidental,omitempty"`

	// Quality is the quality word: "m", "maj", "min", "dim", "aug", "sus", "add".
	Quality string `json:"quality,omitempty"`

	// Extension is the chord extension (7, 9, 11, 13, 6, ...), 0 when absent.
	Extension int `json:"extension,omitempty"`

	// Alterations lists degree alterations in order, e.g. ["b5", "#11"].
	Alterations []string `json:"alterations,omitempty"`

	// Bass is the slash-bass note with accidental, e.g. "Eb".
	Bass string `json:"bass,omitempty"`
}

// symbolGrammar is the participle grammar for chord symbols.
//
//nolint:govet // participle grammar tags are not standard struct tags
type symbolGrammar struct {
	Root        string        `@Note`
	RootAcc     *string       `@(Sharp | Flat)?`
	Quality     *string       `@Quality?`
	Extension   *int          `@Int?`
	Alterations []alteration  `@@*`
	Bass        *bassPart     `("/" @@)?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type alteration struct {
	Acc    string `@(Sharp | Flat)`
	Degree int    `@Int`
}

//nolint:govet // participle grammar tags are not standard struct tags
type bassPart struct {
	Note string  `@Note`
	Acc  *string `@(Sharp | Flat)?`
}

// symbolLexer tokenizes chord symbols. Quality words come before Flat
// so the "m" of "maj" and the "b" of a flat never collide.
var symbolLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Note", Pattern: `[A-G]`},
	{Name: "Quality", Pattern: `maj|min|dim|aug|sus|add|m`},
	{Name: "Sharp", Pattern: `#`},
	{Name: "Flat", Pattern: `b`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Slash", Pattern: `/`},
})

var symbolParser = participle.MustBuild[symbolGrammar](
	participle.Lexer(symbolLexer),
)

// ParseSymbol parses a chord symbol string.
// Supported forms include:
//   - "C" (major triad)
//   - "Cm", "Cmaj7", "Cdim", "Caug", "Csus4"
//   - "C#m7b5", "Bb13", "F#m7b5/A"
//   - "C/G" (slash bass)
func ParseSymbol(s string) (*Symbol, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.NewParse("chord symbol", "", "empty symbol")
	}

	parsed, err := symbolParser.ParseString("", s)
	if err != nil {
		return nil, errors.NewParse("chord symbol", "", err.Error())
	}

	sym := &Symbol{Root: parsed.Root}
	if parsed.RootAcc != nil {
		sym.RootAccidental = *parsed.RootAcc
	}
	if parsed.Quality != nil {
		sym.Quality = *parsed.Quality
	}
	if parsed.Extension != nil {
		sym.Extension = *parsed.Extension
	}
	for _, alt := range parsed.Alterations {
		sym.Alterations = append(sym.Alterations, alt.Acc+strconv.Itoa(alt.Degree))
	}
	if parsed.Bass != nil {
		sym.Bass = parsed.Bass.Note
		if parsed.Bass.Acc != nil {
			sym.Bass += *parsed.Bass.Acc
		}
	}
	return sym, nil
}

// String renders the symbol back to its canonical text form.
func (s *Symbol) String() string {
	var sb strings.Builder
	sb.WriteString(s.Root)
	sb.WriteString(s.RootAccidental)
	sb.WriteString(s.Quality)
	if s.Extension != 0 {
		sb.WriteString(strconv.Itoa(s.Extension))
	}
	for _, alt := range s.Alterations {
		sb.WriteString(alt)
	}
	if s.Bass != "" {
		sb.WriteString("/")
		sb.WriteString(s.Bass)
	}
	return sb.String()
}

