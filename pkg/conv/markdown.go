package conv

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions   = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags    = html.CommonFlags | html.HrefTargetBlank
	bubblePolicy = bluemonday.NewPolicy()
)

func init() {
	// Markup a chat bubble may carry. class survives everywhere so the
	// widget's rcb-* hooks keep working after sanitizing.
	bubblePolicy.AllowElements(
		"p", "br", "div", "span",
		"b", "strong", "i", "em", "u", "ins", "s", "strike", "del",
		"code", "pre", "blockquote", "ul", "ol", "li",
	)
	bubblePolicy.AllowAttrs("href").OnElements("a")
	bubblePolicy.AllowAttrs("class").Globally()
	bubblePolicy.AllowStyles("color", "border-color", "margin-left", "cursor").Globally()
}

// MarkdownToHTML renders md and sanitizes the result for display in a bot
// message.
func MarkdownToHTML(md []byte) string {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	return strings.TrimSpace(string(bubblePolicy.SanitizeBytes(unsafeHTML)))
}

// HTMLToText flattens markup for a terminal.
func HTMLToText(markup string) (string, error) {
	text, err := html2text.FromString(markup, html2text.Options{
		OmitLinks:    false,
		PrettyTables: true,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
