package xmlutil

import "testing"

const sample = `<maestro version="4.10">
  <Style>
    <pageWidth>210</pageWidth>
    <pageHeight>297</pageHeight>
  </Style>
  <Score>
    <Part id="p1"><name>Flute</name></Part>
    <Part id="p2"><name>Oboe</name></Part>
  </Score>
</maestro>`

func TestParseAndQuery(t *testing.T) {
	root, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	parts, err := Query(root, "//Part")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("Query(//Part) returned %d nodes, want 2", len(parts))
	}
	if got := Attr(parts[1], "id"); got != "p2" {
		t.Errorf("Attr(id) = %q, want p2", got)
	}
}

func TestFindOne(t *testing.T) {
	root, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	node, err := FindOne(root, "//Style/pageWidth")
	if err != nil {
		t.Fatalf("FindOne() error = %v", err)
	}
	if got := Text(node); got != "210" {
		t.Errorf("Text() = %q, want 210", got)
	}

	missing, err := FindOne(root, "//NoSuch")
	if err != nil {
		t.Fatalf("FindOne(missing) error = %v", err)
	}
	if missing != nil {
		t.Error("FindOne(missing) != nil")
	}
	if Text(missing) != "" || Attr(missing, "x") != "" {
		t.Error("Text/Attr on nil node should be empty")
	}
}

func TestInvalidXPath(t *testing.T) {
	root, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := Query(root, "///["); err == nil {
		t.Error("Query with invalid XPath should error")
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("<a><b></a>")); err == nil {
		t.Error("Parse of malformed XML should error")
	}
}
