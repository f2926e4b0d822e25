// Package xmlutil provides DOM-style XML parsing and XPath queries over
// score documents. The streaming reader in internal/xmlrw is what the
// structural parsers use; this package serves whole-document concerns
// (style tables, chord lists, ad-hoc CLI queries) where random access
// beats a cursor.
package xmlutil

import (
	"bytes"
	"fmt"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Parse parses XML data into a queryable document node.
func Parse(data []byte) (*xmlquery.Node, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	return root, nil
}

// Query returns all nodes matching the XPath expression.
func Query(root *xmlquery.Node, expr string) ([]*xmlquery.Node, error) {
	if _, err := xpath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid XPath %q: %w", expr, err)
	}
	nodes, err := xmlquery.QueryAll(root, expr)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}
	return nodes, nil
}

// FindOne returns the first node matching the XPath expression, or nil.
func FindOne(root *xmlquery.Node, expr string) (*xmlquery.Node, error) {
	node, err := xmlquery.Query(root, expr)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}
	return node, nil
}

// Text returns the concatenated text content of a node, "" for nil.
func Text(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	return n.InnerText()
}

// Attr returns the named attribute of a node, "" when absent.
func Attr(n *xmlquery.Node, name string) string {
	if n == nil {
		return ""
	}
	return n.SelectAttr(name)
}
