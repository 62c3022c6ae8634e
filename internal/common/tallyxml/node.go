package tallyxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/trugenie/go-tally-extraction/internal/models"
)

// Node is a parsed element. Text holds the trimmed character data directly under it.
type Node struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// Walk visits n and its descendants in document order. Returning false skips the subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns every descendant (or n itself) named name, without descending into matches.
func (n *Node) Find(name string) []*Node {
	var found []*Node
	n.Walk(func(c *Node) bool {
		if c.Name == name {
			found = append(found, c)
			return false
		}
		return true
	})
	return found
}

func parseTree(body []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
		text  []*strings.Builder
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			if len(t.Attr) > 0 {
				n.Attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					n.Attrs[a.Name.Local] = a.Value
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
			text = append(text, &strings.Builder{})
		case xml.CharData:
			if len(stack) > 0 {
				text[len(text)-1].Write(t)
			}
		case xml.EndElement:
			n := stack[len(stack)-1]
			n.Text = strings.TrimSpace(text[len(text)-1].String())
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		}
	}

	if root == nil {
		return nil, errors.New("document has no root element")
	}
	return root, nil
}

// Parse sanitizes and parses a response body. Collection payloads always get both passes;
// other payloads get the hex pass only when the first parse fails.
func Parse(body []byte, collection bool) (*Node, error) {
	clean := StripControlRefs(body)
	if collection {
		clean = StripHexRefs(clean)
	}

	root, err := parseTree(clean)
	if err != nil && !collection {
		root, err = parseTree(StripHexRefs(clean))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedResponse, err)
	}

	if err := protocolError(root); err != nil {
		return nil, err
	}
	return root, nil
}

// protocolError reports the upstream error envelope: a bare RESPONSE document or a LINEERROR.
func protocolError(root *Node) error {
	if root.Name == "RESPONSE" {
		return fmt.Errorf("%w: %s", models.ErrUpstream, root.Text)
	}
	if errs := root.Find("LINEERROR"); len(errs) > 0 {
		return fmt.Errorf("%w: %s", models.ErrUpstream, errs[0].Text)
	}
	return nil
}
