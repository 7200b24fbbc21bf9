package markup

import (
	"slices"
	"strings"

	"github.com/sandevgo/chatlog/internal/core"
)

// ParseStyle reads an inline style declaration list. Declarations without a
// colon are skipped. Only the first colon separates property from value.
func ParseStyle(s string) core.StyleMap {
	style := core.StyleMap{}
	for _, decl := range strings.Split(s, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}

		prop, value, ok := strings.Cut(decl, ":")
		prop = strings.TrimSpace(prop)
		if !ok || prop == "" {
			continue
		}
		style[camelCase(prop)] = strings.TrimSpace(value)
	}
	return style
}

// FormatStyle writes style back as an inline declaration list, properties
// sorted for a stable output.
func FormatStyle(style core.StyleMap) string {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	decls := make([]string, 0, len(keys))
	for _, k := range keys {
		decls = append(decls, hyphenCase(k)+": "+style[k]+";")
	}
	return strings.Join(decls, " ")
}

// camelCase turns background-color into backgroundColor and
// -webkit-transition into WebkitTransition. Property names are case
// insensitive and lowered first; custom properties are kept as written.
func camelCase(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	prop = strings.ToLower(prop)

	var b strings.Builder
	b.Grow(len(prop))
	for i := 0; i < len(prop); i++ {
		c := prop[i]
		if c == '-' && i+1 < len(prop) && isLower(prop[i+1]) {
			b.WriteByte(prop[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func hyphenCase(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}

	var b strings.Builder
	b.Grow(len(prop) + 4)
	for i := 0; i < len(prop); i++ {
		c := prop[i]
		if isUpper(c) {
			b.WriteByte('-')
			b.WriteByte(c - 'A' + 'a')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
