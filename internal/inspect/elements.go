package inspect

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ElementKind discriminates the element stream produced by renderElements.
type ElementKind int

// Element kinds.
const (
	KindHeading ElementKind = iota
	KindLink
)

// Element is a heading or link in document order. Headings carry their
// aggregated text, links their href target.
type Element struct {
	Kind ElementKind
	Text string
	Href string
}

// renderElements converts markdown source to HTML and returns its heading
// and anchor elements in document order. No other element kind matters to
// link inspection.
func renderElements(src []byte) ([]Element, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("inspect: render markdown: %w", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		return nil, fmt.Errorf("inspect: parse rendered html: %w", err)
	}

	var elems []Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.A:
				elems = append(elems, Element{Kind: KindLink, Href: attrValue(n, "href")})
			case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
				elems = append(elems, Element{Kind: KindHeading, Text: nodeText(n)})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return elems, nil
}

// attrValue returns the value of the named attribute, or "" when absent.
func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// nodeText concatenates all text descendants of a node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
