package dom

import (
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var matchers sync.Map

// matcher compiles selector once. An invalid selector matches nothing, the
// same way goquery treats it.
func matcher(selector string) goquery.Matcher {
	if cached, ok := matchers.Load(selector); ok {
		return cached.(goquery.Matcher)
	}
	var m goquery.Matcher = noMatch{}
	if compiled, err := cascadia.Compile(selector); err == nil {
		m = compiled
	}
	actual, _ := matchers.LoadOrStore(selector, m)
	return actual.(goquery.Matcher)
}

type noMatch struct{}

func (noMatch) Match(*html.Node) bool { return false }
func (noMatch) MatchAll(*html.Node) []*html.Node { return nil }
func (noMatch) Filter([]*html.Node) []*html.Node { return nil }
