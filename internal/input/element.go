package input

import (
	"strings"

	"GraffitiPad/internal/render"
	"GraffitiPad/internal/state"
)

// Element is something a Surface can be bound to.
type Element interface {
	Matches(selector string) bool
	// Origin is the top-left corner of the element in viewport coordinates.
	Origin() state.Point
	Context() render.Context
	AddEventListener(t EventType, h Handler)
}

// Document is an ordered registry of elements that can be looked up by selector.
type Document struct {
	elements []Element
}

func NewDocument(elements ...Element) *Document {
	return &Document{elements: elements}
}

func (d *Document) Add(el Element) {
	d.elements = append(d.elements, el)
}

// QuerySelectorAll returns every element matching selector in insertion order.
func (d *Document) QuerySelectorAll(selector string) []Element {
	var found []Element
	for _, el := range d.elements {
		if el.Matches(selector) {
			found = append(found, el)
		}
	}
	return found
}

// MatchSelector implements the selectors elements understand: "#id",
// ".class", a bare tag name and "*".
func MatchSelector(selector, tag, id string, classes []string) bool {
	selector = strings.TrimSpace(selector)
	switch {
	case selector == "":
		return false
	case selector == "*":
		return true
	case strings.HasPrefix(selector, "#"):
		return id != "" && selector[1:] == id
	case strings.HasPrefix(selector, "."):
		for _, c := range classes {
			if c == selector[1:] {
				return true
			}
		}
		return false
	}
	return strings.EqualFold(selector, tag)
}
