package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("image", "cover.png")
	if got, want := err.Error(), "image not found: cover.png"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should unwrap to ErrNotFound")
	}

	noID := NewNotFound("excerpt", "")
	if got, want := noID.Error(), "excerpt not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidation("version", "not a dotted pair")
	if got, want := err.Error(), "validation failed for version: not a dotted pair"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should unwrap to ErrInvalidInput")
	}
}

func TestIOError(t *testing.T) {
	underlying := errors.New("permission denied")
	err := NewIO("open", "/tmp/score.mzp", underlying)
	if got, want := err.Error(), "failed to open /tmp/score.mzp: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, underlying) {
		t.Error("IOError should unwrap to the underlying error")
	}
}

func TestParseError(t *testing.T) {
	err := NewParse("chord symbol", "", "unexpected token")
	if got, want := err.Error(), "failed to parse chord symbol: unexpected token"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ParseError should unwrap to ErrInvalidInput")
	}

	withPath := NewParse("XML", "style.xml", "bad element")
	if got, want := withPath.Error(), "failed to parse XML at style.xml: bad element"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUnsupportedError(t *testing.T) {
	err := NewUnsupported("compression format", "unknown magic bytes")
	if got, want := err.Error(), "unsupported compression format: unknown magic bytes"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Error("UnsupportedError should unwrap to ErrUnsupported")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := errors.New("base")
	wrapped := Wrap(base, "reading style")
	if got, want := wrapped.Error(), "reading style: base"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match base via errors.Is")
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	base := errors.New("base")
	wrapped := Wrapf(base, "excerpt %q", "Part1")
	if got, want := wrapped.Error(), `excerpt "Part1": base`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsAs(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewNotFound("member", "audio.dat"))
	if !Is(err, ErrNotFound) {
		t.Error("Is should see through wrapping")
	}
	var nf *NotFoundError
	if !As(err, &nf) {
		t.Fatal("As should extract NotFoundError")
	}
	if nf.ID != "audio.dat" {
		t.Errorf("ID = %q, want %q", nf.ID, "audio.dat")
	}
}
