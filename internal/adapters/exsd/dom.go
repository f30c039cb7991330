package exsd

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// node is a namespace-free element tree. Only element structure and
// attributes are kept; text content is not needed by the schema model.
type node struct {
	name     string
	attrs    []xml.Attr
	children []*node
}

// parseDocument reads r into a node tree and returns the document element.
func parseDocument(r io.Reader) (*node, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charsetReader

	var stack []*node
	var root *node

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("unexpected element %s after document end", t.Name.Local)
			}
			n := &node{name: t.Name.Local, attrs: t.Attr}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			} else {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// attr returns the value of the attribute with the given local name.
func (n *node) attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name.Local == name && a.Name.Space != "xmlns" {
			return a.Value, true
		}
	}
	return "", false
}

// optionalAttr returns a pointer to the attribute value, or nil when absent.
func (n *node) optionalAttr(name string) *string {
	v, ok := n.attr(name)
	if !ok {
		return nil
	}
	return &v
}

// boolAttr interprets the attribute as a boolean; absent or unrecognised values are false.
func (n *node) boolAttr(name string) bool {
	v, ok := n.attr(name)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "on", "1":
		return true
	default:
		return false
	}
}

// selectPath returns every node reached by following steps from n, in document order.
// A step may list alternatives separated by '|'.
func (n *node) selectPath(steps ...string) []*node {
	current := []*node{n}
	for _, step := range steps {
		names := strings.Split(step, "|")
		var next []*node
		for _, c := range current {
			for _, child := range c.children {
				for _, name := range names {
					if child.name == name {
						next = append(next, child)
						break
					}
				}
			}
		}
		current = next
	}
	return current
}

// first returns the first node reached by steps, or nil.
func (n *node) first(steps ...string) *node {
	matches := n.selectPath(steps...)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// descendants returns every descendant of n named name, in document order.
func (n *node) descendants(name string) []*node {
	var out []*node
	var walk func(*node)
	walk = func(p *node) {
		for _, child := range p.children {
			if child.name == name {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(n)
	return out
}
