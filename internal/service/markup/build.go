package markup

import (
	"strings"

	"github.com/sandevgo/chatlog/internal/core"
	"golang.org/x/net/html"
)

// StyleApplier re-applies presentation rules for an element's classes.
type StyleApplier interface {
	Apply(classes []string, style core.StyleMap) core.StyleMap
}

type Reconstructor struct {
	styles StyleApplier
}

// NewReconstructor builds a Reconstructor. styles may be nil, in which case
// elements keep only their own style attribute.
func NewReconstructor(styles StyleApplier) *Reconstructor {
	return &Reconstructor{styles: styles}
}

// Reconstruct parses markup and returns its top-level nodes in document order.
func (r *Reconstructor) Reconstruct(markup string) ([]core.Node, error) {
	raw, err := Parse(markup)
	if err != nil {
		return nil, err
	}
	return r.Build(raw), nil
}

// Build shapes raw parser output. Comments, doctypes and other non-content
// nodes are dropped.
func (r *Reconstructor) Build(nodes []*html.Node) []core.Node {
	var out []core.Node
	for _, n := range nodes {
		if node, ok := r.build(n); ok {
			out = append(out, node)
		}
	}
	return out
}

func (r *Reconstructor) build(n *html.Node) (core.Node, bool) {
	switch n.Type {
	case html.TextNode:
		return core.TextNode(n.Data), true
	case html.ElementNode:
	default:
		return core.Node{}, false
	}

	node := core.Node{Tag: strings.ToLower(n.Data)}
	for _, attr := range n.Attr {
		key := strings.ToLower(attr.Key)
		if attr.Namespace != "" {
			key = attr.Namespace + ":" + key
		}

		if key == "style" {
			node.Style = ParseStyle(attr.Val)
			continue
		}
		if node.Attrs == nil {
			node.Attrs = make(map[string]string, len(n.Attr))
		}
		node.Attrs[key] = attr.Val
	}

	if r.styles != nil {
		node.Style = r.styles.Apply(strings.Fields(node.Attrs["class"]), node.Style)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child, ok := r.build(c); ok {
			node.Children = append(node.Children, child)
		}
	}
	return node, true
}
