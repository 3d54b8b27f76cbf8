package dom

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// element adapts a single *html.Node. It is a comparable value: two elements
// are equal when they wrap the same node.
type element struct {
	node *html.Node
}

func wrap(n *html.Node) Node {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return element{node: n}
}

func wrapAll(nodes []*html.Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if node := wrap(n); node != nil {
			out = append(out, node)
		}
	}
	return out
}

func first(s *goquery.Selection) Node {
	if s.Length() == 0 {
		return nil
	}
	return wrap(s.Nodes[0])
}

func (e element) sel() *goquery.Selection {
	return goquery.NewDocumentFromNode(e.node).Selection
}

func (e element) Tag() string {
	return strings.ToLower(e.node.Data)
}

func (e element) ID() string {
	value, _ := e.Attr("id")
	return strings.TrimSpace(value)
}

func (e element) Attr(name string) (string, bool) {
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
	}
	return "", false
}

func (e element) Classes() []string {
	value, _ := e.Attr("class")
	return strings.Fields(value)
}

func (e element) Text() string {
	return e.sel().Text()
}

func (e element) Find(selector string) []Node {
	return wrapAll(e.sel().FindMatcher(matcher(selector)).Nodes)
}

func (e element) FindFirst(selector string) Node {
	return first(e.sel().FindMatcher(matcher(selector)))
}

func (e element) Closest(selector string) Node {
	return first(e.sel().ClosestMatcher(matcher(selector)))
}

func (e element) Parent() Node {
	return first(e.sel().Parent())
}

func (e element) NextSibling() Node {
	return first(e.sel().Next())
}

func (e element) Children() []Node {
	return wrapAll(e.sel().Children().Nodes)
}

// Static is an immutable document parsed once.
type Static struct {
	doc *goquery.Document
}

// FromGoquery wraps an already parsed goquery document.
func FromGoquery(doc *goquery.Document) *Static {
	return &Static{doc: doc}
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Static, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return FromGoquery(doc), nil
}

// ParseString parses an HTML string.
func ParseString(source string) (*Static, error) {
	return Parse(strings.NewReader(source))
}

func (s *Static) Body() Node {
	return first(s.doc.Find("body"))
}

func (s *Static) Find(selector string) []Node {
	return wrapAll(s.doc.FindMatcher(matcher(selector)).Nodes)
}

func (s *Static) FindFirst(selector string) Node {
	return first(s.doc.FindMatcher(matcher(selector)))
}
