// Package classify infers a semantic element type from tag, class, display,
// role, and text-content signals. Classification is a fixed priority chain:
// tag checks first, then class signals, then text content, then container
// display. Tag checks run before class checks, so an avatar-classed <img>
// classifies as image; callers wanting avatar-shaped photo elements use the
// generator's override path.
package classify

import (
	"strings"

	"github.com/afaq-khan2000/auto-skeleton/tree"
)

var (
	avatarSignals = []string{"avatar", "profile", "user-image"}
	iconSignals   = []string{"icon", "svg-icon", "fa-", "icon-"}
	cardSignals   = []string{"card", "panel", "tile"}
	listSignals   = []string{"list", "menu", "nav"}
)

// Classify maps one element's signals to its semantic type. Pure and
// deterministic: the same inputs always yield the same type.
func Classify(tag, classAttr, display, role, textContent string) tree.ElementType {
	tag = strings.ToLower(tag)

	// 1. Tag and role take precedence over everything else. A button role
	// outranks the form-control tags: <input role="button"> is a button.
	switch tag {
	case "img":
		return tree.TypeImage
	case "button":
		return tree.TypeButton
	}
	if strings.EqualFold(role, "button") {
		return tree.TypeButton
	}
	switch tag {
	case "input", "textarea", "select":
		return tree.TypeInput
	}

	// 2. Class-name signals, case-insensitive substring match per token.
	tokens := classTokens(classAttr)
	switch {
	case anyContains(tokens, avatarSignals):
		return tree.TypeAvatar
	case anyContains(tokens, iconSignals):
		return tree.TypeIcon
	case anyContains(tokens, cardSignals):
		return tree.TypeCard
	case anyContains(tokens, listSignals):
		return tree.TypeList
	}

	// 3. Text content on a non-flex, non-grid element reads as text.
	if strings.TrimSpace(textContent) != "" && display != "flex" && display != "grid" {
		return tree.TypeText
	}

	// 4. Layout containers.
	if display == "flex" || display == "grid" {
		return tree.TypeContainer
	}
	switch tag {
	case "div", "section", "article":
		return tree.TypeContainer
	}

	return tree.TypeUnknown
}

// classTokens splits a class attribute into lower-cased tokens.
func classTokens(classAttr string) []string {
	if classAttr == "" {
		return nil
	}
	fields := strings.Fields(strings.ToLower(classAttr))
	return fields
}

// anyContains reports whether any token contains any of the signals as a
// substring.
func anyContains(tokens, signals []string) bool {
	for _, tok := range tokens {
		for _, sig := range signals {
			if strings.Contains(tok, sig) {
				return true
			}
		}
	}
	return false
}
