package reader

import (
	"errors"
	"testing"

	"github.com/FocuswithJustin/Maestro/core/score"
	"github.com/FocuswithJustin/Maestro/internal/xmlrw"
)

func doc(version string) []byte {
	return []byte(`<maestro version="` + version + `"></maestro>`)
}

type stubStrategy struct {
	name   string
	called *string
}

func (s stubStrategy) Name() string { return s.name }

func (s stubStrategy) Parse(*score.Score, *xmlrw.Reader, *Context) error {
	*s.called = s.name
	return nil
}

// readDoc runs a Read over the given document, wrapping each table
// strategy with a recording stub so the test sees which one matched.
func readDoc(t *testing.T, data []byte, opts Options) (string, *score.Score, error) {
	t.Helper()
	s := score.NewMaster()
	ctx := NewContext(s)
	ctx.SetIgnoreVersionError(opts.IgnoreVersionError)

	r := NewScoreReader(opts)
	var called string
	for i := range r.table {
		r.table[i].strategy = stubStrategy{name: r.table[i].strategy.Name(), called: &called}
	}

	err := r.Read(s, xmlrw.New(data), ctx, nil)
	return called, s, err
}

func TestDispatchBoundaries(t *testing.T) {
	tests := []struct {
		version  string
		testMode bool
		want     string
	}{
		{"1.14", false, "legacy-114"},
		{"1.15", false, "legacy-206"},
		{"2.7", false, "legacy-206"},
		{"2.8", false, "legacy-302"},
		{"3.99", false, "legacy-302"},
		{"4.0", false, "modern"},
		{"4.10", false, "modern"},
		{"4.10", true, "legacy-302"},
	}
	for _, tt := range tests {
		called, s, err := readDoc(t, doc(tt.version), Options{TestMode: tt.testMode})
		if err != nil {
			t.Errorf("version %s testMode=%v: unexpected error %v", tt.version, tt.testMode, err)
			continue
		}
		if called != tt.want {
			t.Errorf("version %s testMode=%v: dispatched to %q, want %q",
				tt.version, tt.testMode, called, tt.want)
		}
		if s.Version() != parseVersion(tt.version) {
			t.Errorf("version %s: recorded %d", tt.version, s.Version())
		}
	}
}

func TestVersionBandErrors(t *testing.T) {
	tests := []struct {
		version string
		kind    error
	}{
		{"4.11", ErrFileTooNew},
		{"5.0", ErrFileTooNew},
		{"1.13", ErrFileTooOld},
		{"0.9", ErrFileTooOld},
		{"3.0", ErrFileOld300Format},
	}
	for _, tt := range tests {
		_, _, err := readDoc(t, doc(tt.version), Options{})
		if !errors.Is(err, tt.kind) {
			t.Errorf("version %s: err = %v, want kind %v", tt.version, err, tt.kind)
		}
	}
}

func TestIgnoreVersionErrorBypassesBandChecks(t *testing.T) {
	for _, version := range []string{"4.11", "1.13", "3.0"} {
		called, _, err := readDoc(t, doc(version), Options{IgnoreVersionError: true})
		if err != nil {
			t.Errorf("version %s: unexpected error %v", version, err)
		}
		if called == "" {
			t.Errorf("version %s: no strategy dispatched", version)
		}
	}
}

func TestMissingRootIsCorrupted(t *testing.T) {
	for _, data := range [][]byte{
		[]byte(``),
		[]byte(`<other><maestroless/></other>`),
	} {
		_, _, err := readDoc(t, data, Options{})
		if !errors.Is(err, ErrFileCorrupted) {
			t.Fatalf("err = %v, want ErrFileCorrupted", err)
		}
		var le *LoadError
		if !errors.As(err, &le) {
			t.Fatalf("err = %T, want *LoadError", err)
		}
		if le.Msg == "" {
			t.Error("corrupted error carries no stream diagnostic")
		}
	}
}

func TestMissingRootCarriesStreamText(t *testing.T) {
	e := xmlrw.New([]byte(``))
	s := score.NewMaster()
	err := NewScoreReader(Options{}).Read(s, e, NewContext(s), nil)
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err = %T, want *LoadError", err)
	}
	if le.Msg != e.ErrString() {
		t.Errorf("msg = %q, want the stream's own text %q", le.Msg, e.ErrString())
	}
}

type countingHook struct{ calls int }

func (h *countingHook) SeedDefaults() { h.calls++ }

func TestStyleHookSeeding(t *testing.T) {
	tests := []struct {
		version  string
		testMode bool
		want     int
	}{
		{"1.14", false, 1},
		{"3.99", false, 1},
		{"4.0", false, 0},
		{"4.10", false, 0},
		{"4.10", true, 1},
	}
	for _, tt := range tests {
		s := score.NewMaster()
		ctx := NewContext(s)
		hook := &countingHook{}
		r := NewScoreReader(Options{TestMode: tt.testMode})
		if err := r.Read(s, xmlrw.New(doc(tt.version)), ctx, hook); err != nil {
			t.Fatalf("version %s: %v", tt.version, err)
		}
		if hook.calls != tt.want {
			t.Errorf("version %s testMode=%v: SeedDefaults called %d times, want %d",
				tt.version, tt.testMode, hook.calls, tt.want)
		}
	}
}

func TestReadClearsEditFlags(t *testing.T) {
	s := score.NewMaster()
	s.SetExcerptsChanged(true)
	s.SetAutosaveDirty(true)
	ctx := NewContext(s)
	if err := NewScoreReader(Options{}).Read(s, xmlrw.New(doc("4.10")), ctx, nil); err != nil {
		t.Fatal(err)
	}
	if s.ExcerptsChanged() {
		t.Error("excerpts-changed flag survived the load")
	}
	if s.AutosaveDirty() {
		t.Error("autosave flag survived the load")
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"4.10", 410},
		{"1.14", 114},
		{"2.7", 207},
		{"3", 300},
		{"", 0},
		{"x.y", 0},
		{"4.x", 400},
		{" 4 . 1 ", 401},
	}
	for _, tt := range tests {
		if got := parseVersion(tt.in); got != tt.want {
			t.Errorf("parseVersion(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
