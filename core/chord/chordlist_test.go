package chord

import "testing"

func TestEnsureDefaults(t *testing.T) {
	l := NewList()
	if l.Len() != 0 {
		t.Fatalf("new list has %d entries", l.Len())
	}

	l.EnsureDefaults()
	if l.Len() != len(builtinEntries) {
		t.Errorf("Len() = %d, want %d", l.Len(), len(builtinEntries))
	}
	if l.Custom() {
		t.Error("built-in list reports Custom()")
	}

	e, ok := l.Entry(6)
	if !ok || e.Name != "m7b5" {
		t.Errorf("Entry(6) = %+v, %v, want m7b5", e, ok)
	}
}

func TestEnsureDefaultsKeepsExisting(t *testing.T) {
	l := NewList()
	l.add(Entry{ID: 99, Name: "custom"})
	l.EnsureDefaults()

	if l.Len() != 1 {
		t.Errorf("EnsureDefaults over a populated list changed it, Len() = %d", l.Len())
	}
}

func TestReadChordList(t *testing.T) {
	blob := []byte(`<chordList>
  <chord id="1"><name></name></chord>
  <chord id="64"><name>m7b5</name></chord>
  <chord id="notanumber"><name>skip</name></chord>
  <chord id="65"><name>sus2</name></chord>
</chordList>`)

	l := NewList()
	if err := l.Read(blob); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !l.Custom() {
		t.Error("list read from blob should report Custom()")
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (non-numeric id skipped)", l.Len())
	}

	entries := l.Entries()
	if entries[1].ID != 64 || entries[1].Name != "m7b5" {
		t.Errorf("entries[1] = %+v, want {64 m7b5}", entries[1])
	}

	// EnsureDefaults must not disturb a custom list.
	l.EnsureDefaults()
	if l.Len() != 3 {
		t.Errorf("EnsureDefaults after Read changed Len() to %d", l.Len())
	}
}

func TestReadEmptyBlobIsNoOp(t *testing.T) {
	l := NewList()
	if err := l.Read(nil); err != nil {
		t.Fatalf("Read(nil) error = %v", err)
	}
	if l.Len() != 0 || l.Custom() {
		t.Error("Read of empty blob changed the list")
	}
}

func TestReadBadBlob(t *testing.T) {
	l := NewList()
	if err := l.Read([]byte("<chordList><chord></chordList>")); err == nil {
		t.Error("Read of malformed XML should error")
	}
	if err := l.Read([]byte("<chordList/>")); err == nil {
		t.Error("Read with no chord entries should error")
	}
}
