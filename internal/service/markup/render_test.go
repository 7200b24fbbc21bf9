package markup

import (
	"testing"

	"github.com/sandevgo/chatlog/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name  string
		nodes []core.Node
		want  string
	}{
		{
			name:  "text is escaped",
			nodes: []core.Node{core.TextNode("a < b & c")},
			want:  "a &lt; b &amp; c",
		},
		{
			name: "attributes sorted and style appended",
			nodes: []core.Node{{
				Tag:      "div",
				Attrs:    map[string]string{"id": "x", "class": "c"},
				Style:    core.StyleMap{"marginTop": "4px"},
				Children: []core.Node{core.TextNode("hi")},
			}},
			want: `<div class="c" id="x" style="margin-top: 4px;">hi</div>`,
		},
		{
			name:  "void element",
			nodes: []core.Node{{Tag: "br"}},
			want:  "<br/>",
		},
		{
			name:  "nil nodes",
			nodes: nil,
			want:  "",
		},
	}

	r := NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.nodes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_VoidElementWithChildrenFails(t *testing.T) {
	_, err := NewRenderer().Render([]core.Node{{Tag: "br", Children: []core.Node{core.TextNode("x")}}})
	assert.Error(t, err)
}

func TestRenderReconstructRoundTrip(t *testing.T) {
	in := []core.Node{
		{
			Tag:   "div",
			Attrs: map[string]string{"class": "rcb-bot-message"},
			Style: core.StyleMap{"backgroundColor": "red", "marginTop": "4px"},
			Children: []core.Node{
				{Tag: "a", Attrs: map[string]string{"href": "https://example.com/?a=1&b=2"}, Children: []core.Node{core.TextNode("link")}},
				core.TextNode(" & more"),
				{Tag: "ul", Children: []core.Node{
					{Tag: "li", Children: []core.Node{core.TextNode("one")}},
					{Tag: "li", Children: []core.Node{core.TextNode("two")}},
				}},
			},
		},
		core.TextNode("tail"),
	}

	markup, err := NewRenderer().Render(in)
	require.NoError(t, err)

	out, err := NewReconstructor(nil).Reconstruct(markup)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
