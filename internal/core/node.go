package core

// Node is a reconstructed markup node. A node with an empty Tag is a text
// leaf carrying Text. The style attribute is held in Style, never in Attrs.
type Node struct {
	Text     string
	Tag      string
	Attrs    map[string]string
	Style    StyleMap
	Children []Node
}

func TextNode(text string) Node {
	return Node{Text: text}
}

func (n Node) IsText() bool {
	return n.Tag == ""
}

// StyleMap maps camelCase style properties to their values.
type StyleMap map[string]string

// Merge returns a new map holding s overlaid with patch. Keys in patch win.
func (s StyleMap) Merge(patch StyleMap) StyleMap {
	out := make(StyleMap, len(s)+len(patch))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}
