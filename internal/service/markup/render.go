package markup

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sandevgo/chatlog/internal/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Renderer serializes core.Node trees to markup. It is the default
// core.Renderer used when encoding rich messages.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(nodes []core.Node) (string, error) {
	var sb strings.Builder
	for _, n := range nodes {
		if err := html.Render(&sb, toHTML(n)); err != nil {
			return "", fmt.Errorf("failed to render <%s>: %w", n.Tag, err)
		}
	}
	return sb.String(), nil
}

func toHTML(n core.Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		if k != "style" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		el.Attr = append(el.Attr, html.Attribute{Key: k, Val: n.Attrs[k]})
	}
	if n.Style != nil {
		el.Attr = append(el.Attr, html.Attribute{Key: "style", Val: FormatStyle(n.Style)})
	}

	for _, child := range n.Children {
		el.AppendChild(toHTML(child))
	}
	return el
}
