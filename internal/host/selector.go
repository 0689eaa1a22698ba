package host

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const pathPrefix = "path:"

// Selector matches elements by tag, id and classes (`button#save.primary`),
// or by a doublestar glob over the element's id path (`path:toolbar/**/save`).
type Selector struct {
	raw     string
	tag     string
	id      string
	classes []string
	glob    string
}

// ParseSelector compiles a selector string.
func ParseSelector(raw string) (Selector, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Selector{}, fmt.Errorf("empty selector")
	}

	if strings.HasPrefix(s, pathPrefix) {
		glob := strings.TrimPrefix(s, pathPrefix)
		if glob == "" || !doublestar.ValidatePattern(glob) {
			return Selector{}, fmt.Errorf("invalid path selector %q", raw)
		}
		return Selector{raw: raw, glob: glob}, nil
	}

	sel := Selector{raw: raw}
	rest := s
	if i := strings.IndexAny(rest, "#."); i != 0 {
		if i < 0 {
			i = len(rest)
		}
		sel.tag = rest[:i]
		rest = rest[i:]
	}
	for rest != "" {
		marker := rest[0]
		rest = rest[1:]
		end := strings.IndexAny(rest, "#.")
		if end < 0 {
			end = len(rest)
		}
		name := rest[:end]
		rest = rest[end:]
		if name == "" {
			return Selector{}, fmt.Errorf("invalid selector %q: empty name after %q", raw, string(marker))
		}
		switch marker {
		case '#':
			if sel.id != "" {
				return Selector{}, fmt.Errorf("invalid selector %q: more than one id", raw)
			}
			sel.id = name
		case '.':
			sel.classes = append(sel.classes, name)
		}
	}
	if strings.ContainsAny(sel.tag, " \t>+~*[]:") {
		return Selector{}, fmt.Errorf("unsupported selector %q", raw)
	}
	return sel, nil
}

// String returns the selector as written.
func (s Selector) String() string { return s.raw }

// Matches reports whether el satisfies the selector.
func (s Selector) Matches(el *Element) bool {
	if el == nil {
		return false
	}
	if s.glob != "" {
		ok, err := doublestar.Match(s.glob, relativePath(el))
		return err == nil && ok
	}
	if s.tag != "" && s.tag != el.tag {
		return false
	}
	if s.id != "" && s.id != el.id {
		return false
	}
	for _, c := range s.classes {
		if !el.HasClass(c) {
			return false
		}
	}
	return true
}

// Query returns the first element in document order matching sel, or nil.
// Invalid selectors match nothing.
func (d *Document) Query(sel string) *Element {
	compiled, err := ParseSelector(sel)
	if err != nil {
		return nil
	}
	return d.QuerySelector(compiled)
}

// QuerySelector is Query for a compiled selector.
func (d *Document) QuerySelector(sel Selector) *Element {
	var found *Element
	d.root.Walk(func(n *Element) bool {
		if n != d.root && sel.Matches(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// QueryAll returns every element matching sel in document order.
func (d *Document) QueryAll(sel string) []*Element {
	compiled, err := ParseSelector(sel)
	if err != nil {
		return nil
	}
	var out []*Element
	d.root.Walk(func(n *Element) bool {
		if n != d.root && compiled.Matches(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// relativePath is the element's path below its document root.
func relativePath(el *Element) string {
	path := el.Path()
	if el.doc == nil {
		return path
	}
	return strings.TrimPrefix(path, el.doc.root.tag+"/")
}
