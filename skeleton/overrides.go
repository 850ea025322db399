package skeleton

import (
	"strings"

	"github.com/afaq-khan2000/auto-skeleton/tree"
)

// overrideKeys generates the candidate override keys for one element, in
// resolution priority order: element id, ".class" per class token, ".tag",
// bare tag, and finally the synthesized type class. The first key present
// in the override map wins.
func overrideKeys(el *tree.AnalyzedElement) []string {
	keys := make([]string, 0, 4)
	if el.ID != "" {
		keys = append(keys, el.ID)
	}
	for _, cls := range strings.Fields(el.ClassName) {
		keys = append(keys, "."+cls)
	}
	if el.TagName != "" {
		keys = append(keys, "."+el.TagName, el.TagName)
	}
	keys = append(keys, ".auto-skeleton-"+string(el.ElementType))
	return keys
}

// applyOverride merges the first matching caller override onto the
// computed config. No match leaves the config untouched.
func (g *generator) applyOverride(cfg *PlaceholderConfig, el *tree.AnalyzedElement) {
	if len(g.opts.CustomOverrides) == 0 {
		return
	}
	for _, key := range overrideKeys(el) {
		ov, ok := g.opts.CustomOverrides[key]
		if !ok {
			continue
		}
		mergeOverride(cfg, ov)
		return
	}
}

// mergeOverride shallowly merges set override fields onto the config.
func mergeOverride(cfg *PlaceholderConfig, ov Override) {
	if ov.Type != nil {
		cfg.Type = *ov.Type
	}
	if ov.Width != nil {
		cfg.Width = *ov.Width
	}
	if ov.Height != nil {
		cfg.Height = *ov.Height
	}
	if ov.Shape != nil {
		cfg.Shape = *ov.Shape
	}
	if ov.Lines != nil && *ov.Lines > 0 {
		cfg.Lines = *ov.Lines
	}
	if ov.Animation != nil {
		cfg.Animation = *ov.Animation
	}
	for k, v := range ov.Style {
		if cfg.Style == nil {
			cfg.Style = map[string]string{}
		}
		cfg.Style[k] = v
	}
}
