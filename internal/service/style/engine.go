// Package style re-applies theme-derived presentation to reconstructed
// markup, keyed by the class names the widget renders.
package style

import (
	"slices"

	"github.com/sandevgo/chatlog/internal/config"
	"github.com/sandevgo/chatlog/internal/core"
)

const (
	ClassOptionsContainer   = "rcb-options-container"
	ClassCheckboxContainer  = "rcb-checkbox-container"
	ClassOptions            = "rcb-options"
	ClassCheckboxRow        = "rcb-checkbox-row-container"
	ClassCheckboxNextButton = "rcb-checkbox-next-button"
	avatarOffset            = "50px"
)

type rule struct {
	applies func(classes []string) bool
	patch   func() core.StyleMap
}

// Engine holds the ordered rule list. Rules are evaluated independently and
// their patches merged in order, so a later rule wins on a shared property.
type Engine struct {
	cfg   *config.StyleConfig
	rules []rule
}

func NewEngine(cfg *config.StyleConfig) *Engine {
	e := &Engine{cfg: cfg}
	// containers, options, checkbox row, checkbox next button
	e.rules = []rule{
		{
			applies: e.containerApplies,
			patch:   func() core.StyleMap { return core.StyleMap{"marginLeft": avatarOffset} },
		},
		{
			applies: hasClass(ClassOptions),
			patch:   func() core.StyleMap { return e.actionStyle(cfg.OptionColor) },
		},
		{
			applies: hasClass(ClassCheckboxRow),
			patch:   func() core.StyleMap { return e.actionStyle(cfg.CheckboxRowColor) },
		},
		{
			applies: hasClass(ClassCheckboxNextButton),
			patch:   func() core.StyleMap { return e.actionStyle(cfg.CheckboxNextColor) },
		},
	}
	return e
}

// Patches returns the style patches triggered by classes, in rule order.
func (e *Engine) Patches(classes []string) []core.StyleMap {
	var patches []core.StyleMap
	for _, r := range e.rules {
		if r.applies(classes) {
			patches = append(patches, r.patch())
		}
	}
	return patches
}

// Apply merges every triggered patch into style. The input map is not
// modified. When no rule triggers, style is returned as is.
func (e *Engine) Apply(classes []string, style core.StyleMap) core.StyleMap {
	for _, patch := range e.Patches(classes) {
		style = style.Merge(patch)
	}
	return style
}

func (e *Engine) containerApplies(classes []string) bool {
	if !e.cfg.ShowAvatar {
		return false
	}
	return slices.Contains(classes, ClassOptionsContainer) || slices.Contains(classes, ClassCheckboxContainer)
}

func (e *Engine) actionStyle(override string) core.StyleMap {
	color := override
	if color == "" {
		color = e.cfg.PrimaryColor
	}
	return core.StyleMap{
		"color":       color,
		"borderColor": color,
		"cursor":      "url(" + e.cfg.ActionDisabledIcon + "), auto",
	}
}

func hasClass(class string) func([]string) bool {
	return func(classes []string) bool {
		return slices.Contains(classes, class)
	}
}
