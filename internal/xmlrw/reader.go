// Package xmlrw provides the streaming element reader used by the score
// parsers. It wraps encoding/xml with the cursor-style contract the
// structural parsers need: read the next start element, inspect its name
// and attributes, read its text or skip it wholesale, and carry a sticky
// error state including a distinguished application-level error marker.
//
// Unknown elements are a non-fatal diagnostic channel, not an error:
// they are counted, logged at debug level and skipped, so documents
// written by newer program versions with an additive vocabulary stay
// readable.
package xmlrw

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/Maestro/internal/logging"
)

// AppError is the distinguished custom application error a structural
// parser raises when document content is semantically unreadable, as
// opposed to a low-level syntax error from the underlying decoder.
type AppError struct {
	Msg string
}

func (e *AppError) Error() string { return e.Msg }

// Reader is a cursor over a stream of document elements.
type Reader struct {
	dec     *xml.Decoder
	docName string
	context any

	cur     xml.StartElement
	err     error
	unknown int
}

// New creates a Reader over the given document bytes.
func New(data []byte) *Reader {
	dec := xml.NewDecoder(bytes.NewReader(data))
	// Entity expansion disabled; external entities are never fetched.
	dec.Entity = map[string]string{}
	return &Reader{dec: dec}
}

// SetDocName sets the document name used in diagnostics.
func (r *Reader) SetDocName(name string) { r.docName = name }

// DocName returns the document name used in diagnostics.
func (r *Reader) DocName() string { return r.docName }

// SetContext attaches an arbitrary parse context to the reader, so
// nested parsers handed only the reader can recover it.
func (r *Reader) SetContext(ctx any) { r.context = ctx }

// Context returns the attached parse context.
func (r *Reader) Context() any { return r.context }

// ReadNextStartElement advances to the next start element within the
// current element and returns true, or returns false at the end of the
// current element, at end of document, or on error. At the top level it
// advances to the next root-level start element.
func (r *Reader) ReadNextStartElement() bool {
	if r.err != nil {
		return false
	}
	for {
		tok, err := r.dec.Token()
		if err != nil {
			r.err = err
			return false
		}
		switch t := tok.(type) {
		case xml.StartElement:
			r.cur = t
			return true
		case xml.EndElement:
			return false
		}
	}
}

// Name returns the name of the current element.
func (r *Reader) Name() string { return r.cur.Name.Local }

// Attribute returns the named attribute of the current element, or ""
// when absent.
func (r *Reader) Attribute(name string) string {
	v, _ := r.AttributeOK(name)
	return v
}

// AttributeOK returns the named attribute and whether it is present.
func (r *Reader) AttributeOK(name string) (string, bool) {
	for _, a := range r.cur.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// ReadText consumes the current element and returns its character data.
// Text inside nested child elements is included.
func (r *Reader) ReadText() string {
	if r.err != nil {
		return ""
	}
	var sb strings.Builder
	depth := 0
	for {
		tok, err := r.dec.Token()
		if err != nil {
			r.err = err
			return sb.String()
		}
		switch tok.(type) {
		case xml.CharData:
			sb.Write(tok.(xml.CharData))
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return sb.String()
			}
			depth--
		}
	}
}

// ReadInt consumes the current element and parses its text as an
// integer in the given base. Malformed or missing text yields 0.
func (r *Reader) ReadInt(base int) int {
	text := strings.TrimSpace(r.ReadText())
	n, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		return 0
	}
	return int(n)
}

// SkipCurrentElement consumes the rest of the current element,
// discarding its contents.
func (r *Reader) SkipCurrentElement() {
	if r.err != nil {
		return
	}
	if err := r.dec.Skip(); err != nil {
		r.err = err
	}
}

// Unknown records the current element as unrecognized and skips it.
// This is a diagnostic path, not a failure.
func (r *Reader) Unknown() {
	r.unknown++
	logging.Debug("unknown element skipped",
		"doc", r.docName, "element", r.Name())
	r.SkipCurrentElement()
}

// UnknownCount returns how many unknown elements were skipped.
func (r *Reader) UnknownCount() int { return r.unknown }

// RaiseError puts the reader into the custom application error state.
// Used by structural parsers for semantically unreadable content.
func (r *Reader) RaiseError(msg string) {
	r.err = &AppError{Msg: msg}
}

// Err returns the sticky error state, nil while the stream is healthy.
// io.EOF after a complete read is not an error to the caller; parsers
// check Err only on paths where the document ended unexpectedly.
func (r *Reader) Err() error { return r.err }

// CustomError reports whether the error state was raised by a
// structural parser rather than the underlying decoder.
func (r *Reader) CustomError() bool {
	var appErr *AppError
	return errors.As(r.err, &appErr)
}

// ErrString returns the diagnostic text of the error state, or "".
// Plain end-of-input reads as a premature-end diagnostic, which is
// what a document with no root element reports.
func (r *Reader) ErrString() string {
	if r.err == nil {
		return ""
	}
	if r.err == io.EOF {
		return "premature end of document"
	}
	return r.err.Error()
}
