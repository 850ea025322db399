// Package selector matches a subset of CSS selectors against element
// facts (tag, id, class, attributes). It exists for ignore lists and
// override keys; full CSS combinators are out of scope.
//
// Supported forms:
//   - tag: "img", "button"
//   - .class: ".sidebar"
//   - #id: "#main-nav"
//   - tag.class: "div.ad-slot"
//   - tag#id: "div#banner"
//   - tag[attr]: "div[data-skip]"
//   - tag[attr=val]: "div[role=dialog]"
package selector

import "strings"

// Selector is a parsed simple selector.
type Selector struct {
	Tag     string
	ID      string
	Class   string
	AttrKey string
	AttrVal string
}

// Parse parses "tag.class", "#id", "tag[attr=val]", etc.
func Parse(sel string) Selector {
	var s Selector
	sel = strings.TrimSpace(sel)

	// Attribute selector: tag[attr] or tag[attr=val].
	if idx := strings.IndexByte(sel, '['); idx >= 0 {
		attrPart := strings.TrimRight(sel[idx+1:], "]")
		sel = sel[:idx]
		if eqIdx := strings.IndexByte(attrPart, '='); eqIdx >= 0 {
			s.AttrKey = attrPart[:eqIdx]
			s.AttrVal = strings.Trim(attrPart[eqIdx+1:], `"'`)
		} else {
			s.AttrKey = attrPart
		}
	}

	if idx := strings.IndexByte(sel, '#'); idx >= 0 {
		s.ID = sel[idx+1:]
		sel = sel[:idx]
	}

	if idx := strings.IndexByte(sel, '.'); idx >= 0 {
		s.Class = sel[idx+1:]
		sel = sel[:idx]
	}

	s.Tag = strings.ToLower(sel)
	return s
}

// Matches reports whether an element with the given tag, id, class
// attribute, and attribute lookup satisfies the selector.
func (s Selector) Matches(tag, id, classAttr string, attr func(string) string) bool {
	if s.Tag != "" && strings.ToLower(tag) != s.Tag {
		return false
	}
	if s.ID != "" && id != s.ID {
		return false
	}
	if s.Class != "" {
		found := false
		for _, c := range strings.Fields(classAttr) {
			if c == s.Class {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if s.AttrKey != "" {
		if attr == nil {
			return false
		}
		val := attr(s.AttrKey)
		if s.AttrVal != "" {
			if val != s.AttrVal {
				return false
			}
		} else if val == "" {
			return false
		}
	}
	return true
}

// MatchAny reports whether any of the raw selectors matches the element.
func MatchAny(selectors []string, tag, id, classAttr string, attr func(string) string) bool {
	for _, raw := range selectors {
		if raw == "" {
			continue
		}
		if Parse(raw).Matches(tag, id, classAttr, attr) {
			return true
		}
	}
	return false
}
