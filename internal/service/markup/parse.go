// Package markup converts between serialized markup and core.Node trees.
//
// Reconstruction runs in two stages: Parse hands the string to the HTML5
// parser in a detached fragment context (nothing is fetched or executed),
// then Reconstructor.Build shapes the raw tree into core.Node values.
package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse returns the top-level raw nodes of markup, parsed as the content of
// a detached <div>.
func Parse(markup string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	return nodes, nil
}
