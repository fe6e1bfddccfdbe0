package svg

import (
	"fmt"
	"strconv"
)

// Attr is a single attribute on an element
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the retained SVG scene graph
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// NewElement creates a detached element
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// Set assigns an attribute, replacing any previous value with the same name.
// Numbers are written in their shortest form (40.5, 18, -5).
func (e *Element) Set(name string, value interface{}) *Element {
	v := formatValue(value)
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = v
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: v})
	return e
}

// Get returns the attribute value and whether it was set
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Append creates a child element and returns it
func (e *Element) Append(tag string) *Element {
	child := NewElement(tag)
	e.Children = append(e.Children, child)
	return child
}

// SetText replaces the character data of the element
func (e *Element) SetText(text string) *Element {
	e.Text = text
	return e
}

// Walk visits e and all of its descendants depth-first.
// Returning false from fn stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// FindAll returns every descendant (including e) with the given tag
func (e *Element) FindAll(tag string) []*Element {
	var found []*Element
	e.Walk(func(el *Element) bool {
		if el.Tag == tag {
			found = append(found, el)
		}
		return true
	})
	return found
}

// Child returns the first direct child with the given tag, or nil
func (e *Element) Child(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
