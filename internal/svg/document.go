// Package svg is a small retained-mode scene graph that serializes to SVG.
// A Document plays the role of the host drawing surface: renderers look up a
// pre-existing element by id and append nodes to it.
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Namespace is the SVG XML namespace
const Namespace = "http://www.w3.org/2000/svg"

// ErrSurfaceNotFound is returned when no element carries the requested id
var ErrSurfaceNotFound = errors.New("surface not found")

// Document holds a tree of elements rooted at an <svg> element
type Document struct {
	Root *Element
}

// NewDocument creates a document whose root <svg> element has the given id.
// An empty id leaves the root anonymous.
func NewDocument(rootID string) *Document {
	root := NewElement("svg").Set("xmlns", Namespace)
	if rootID != "" {
		root.Set("id", rootID)
	}
	return &Document{Root: root}
}

// GetElementByID finds the first element whose id attribute equals id
func (d *Document) GetElementByID(id string) (*Element, error) {
	var found *Element
	d.Root.Walk(func(el *Element) bool {
		if v, ok := el.Get("id"); ok && v == id {
			found = el
			return false
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("%w: #%s", ErrSurfaceNotFound, id)
	}
	return found, nil
}

// Encode writes the document as XML
func (d *Document) Encode(w io.Writer) error {
	enc := xml.NewEncoder(w)
	if err := encodeElement(enc, d.Root); err != nil {
		return fmt.Errorf("failed to encode svg: %w", err)
	}
	return enc.Flush()
}

// Bytes returns the encoded document
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeElement(enc *xml.Encoder, el *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: el.Tag}}
	for _, a := range el.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if el.Text != "" {
		if err := enc.EncodeToken(xml.CharData(el.Text)); err != nil {
			return err
		}
	}
	for _, c := range el.Children {
		if err := encodeElement(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
