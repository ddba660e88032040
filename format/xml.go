// Package format reads and writes mtlx documents. The textual form is XML:
// element categories are tag names, the name attribute is the element name,
// and everything else passes through as ordinary attributes. A JSON
// projection of the same tree supports JSONPath queries.
package format

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/agentic-research/mtlx"
)

// Read parses a document from XML. The root element must be <materialx>.
// References are not resolved or checked here; a freshly read document may
// be dangling and still loads, matching incremental-edit semantics.
func Read(r io.Reader) (mtlx.Document, error) {
	dec := xml.NewDecoder(r)
	doc := mtlx.NewDocument()

	root, err := nextStart(dec)
	if err != nil {
		return mtlx.Document{}, fmt.Errorf("read document: %w", err)
	}
	if root.Name.Local != mtlx.CategoryDocument {
		return mtlx.Document{}, fmt.Errorf("read document: root element is <%s>, want <%s>",
			root.Name.Local, mtlx.CategoryDocument)
	}
	applyAttributes(doc.Element, root.Attr)
	if err := readChildren(dec, doc.Element); err != nil {
		return mtlx.Document{}, fmt.Errorf("read document: %w", err)
	}
	return doc, nil
}

// ReadString parses a document from an XML string.
func ReadString(s string) (mtlx.Document, error) {
	return Read(strings.NewReader(s))
}

func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

func readChildren(dec *xml.Decoder, parent *mtlx.Element) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			name := ""
			for _, a := range t.Attr {
				if a.Name.Local == "name" {
					name = a.Value
					break
				}
			}
			child, err := parent.AddChild(t.Name.Local, name)
			if err != nil {
				return err
			}
			applyAttributes(child, t.Attr)
			if err := readChildren(dec, child); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return fmt.Errorf("unexpected text content under %q", parent.Path())
			}
		}
	}
}

func applyAttributes(e *mtlx.Element, attrs []xml.Attr) {
	for _, a := range attrs {
		if a.Name.Local == "name" || a.Name.Space != "" {
			continue
		}
		e.SetAttribute(a.Name.Local, a.Value)
	}
}

// Write serializes the document as indented XML, preserving child order and
// first-set attribute order.
func Write(w io.Writer, doc mtlx.Document) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := writeElement(enc, doc.Element); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteString serializes the document as an XML string.
func WriteString(doc mtlx.Document) (string, error) {
	var b strings.Builder
	if err := Write(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeElement(enc *xml.Encoder, e *mtlx.Element) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Category()}}
	if e.Parent() != nil {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "name"}, Value: e.Name()})
	}
	for _, key := range e.AttributeNames() {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: key},
			Value: e.Attribute(key),
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range e.Children() {
		if err := writeElement(enc, child); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
