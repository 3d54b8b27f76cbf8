package dom

import "sync"

// Live is a document whose content is replaced while it is being read, the way
// a browser keeps rendering a page between two samples.
type Live struct {
	mu      sync.RWMutex
	current Document
}

func NewLive(doc Document) *Live {
	return &Live{current: doc}
}

// Replace swaps the visible content.
func (l *Live) Replace(doc Document) {
	l.mu.Lock()
	l.current = doc
	l.mu.Unlock()
}

// ReplaceHTML parses source and swaps it in. The previous content stays
// visible when parsing fails.
func (l *Live) ReplaceHTML(source string) error {
	doc, err := ParseString(source)
	if err != nil {
		return err
	}
	l.Replace(doc)
	return nil
}

func (l *Live) Snapshot() Document {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

func (l *Live) Body() Node {
	if doc := l.Snapshot(); doc != nil {
		return doc.Body()
	}
	return nil
}

func (l *Live) Find(selector string) []Node {
	if doc := l.Snapshot(); doc != nil {
		return doc.Find(selector)
	}
	return nil
}

func (l *Live) FindFirst(selector string) Node {
	if doc := l.Snapshot(); doc != nil {
		return doc.FindFirst(selector)
	}
	return nil
}
