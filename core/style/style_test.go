package style

import "testing"

func TestApplyDefaults(t *testing.T) {
	s := New()
	if s.Len() != 0 {
		t.Fatalf("new style has %d values, want 0", s.Len())
	}

	s.ApplyDefaults()
	if !s.EqualsDefaults() {
		t.Error("style after ApplyDefaults should equal defaults")
	}
	if got := s.Value("spatium"); got != Default("spatium") {
		t.Errorf("spatium = %q, want default %q", got, Default("spatium"))
	}
}

func TestApplyDefaultsKeepsOverrides(t *testing.T) {
	s := New()
	s.Set("spatium", "2.0")
	s.ApplyDefaults()

	if got := s.Value("spatium"); got != "2.0" {
		t.Errorf("spatium = %q, want preserved override 2.0", got)
	}
	if s.EqualsDefaults() {
		t.Error("style with an override should not equal defaults")
	}
}

func TestReadAppliesDeltas(t *testing.T) {
	s := New()
	s.ApplyDefaults()

	blob := []byte(`<maestroStyle>
  <Style>
    <pageWidth>420</pageWidth>
    <customThing>7</customThing>
  </Style>
</maestroStyle>`)
	if err := s.Read(blob); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got := s.Value("pageWidth"); got != "420" {
		t.Errorf("pageWidth = %q, want 420", got)
	}
	if got := s.Value("customThing"); got != "7" {
		t.Errorf("customThing = %q, want 7", got)
	}
	// Untouched values keep their defaults.
	if got := s.Value("pageHeight"); got != Default("pageHeight") {
		t.Errorf("pageHeight = %q, want default", got)
	}
}

func TestReadEmptyBlobIsNoOp(t *testing.T) {
	s := New()
	s.Set("spatium", "2.0")

	if err := s.Read(nil); err != nil {
		t.Fatalf("Read(nil) error = %v", err)
	}
	if s.Len() != 1 || s.Value("spatium") != "2.0" {
		t.Error("Read of empty blob changed the style")
	}
}

func TestReadMalformed(t *testing.T) {
	s := New()
	if err := s.Read([]byte("<Style><open></Style>")); err == nil {
		t.Error("Read of malformed XML should error")
	}
	if err := s.Read([]byte("<noStyleHere/>")); err == nil {
		t.Error("Read without a Style element should error")
	}
}

func TestSeedHook(t *testing.T) {
	s := New()
	h := NewSeedHook(s)

	if h.Seeded() {
		t.Error("new hook reports seeded")
	}
	h.SeedDefaults()
	if !h.Seeded() {
		t.Error("hook not seeded after SeedDefaults")
	}
	if !s.EqualsDefaults() {
		t.Error("style not at defaults after hook ran")
	}

	// A second invocation must not clobber later edits.
	s.Set("spatium", "9.9")
	h.SeedDefaults()
	if got := s.Value("spatium"); got != "9.9" {
		t.Errorf("spatium = %q after repeat seed, want 9.9", got)
	}
}
