package searchbar

import (
	"strings"
	"unicode/utf8"
)

// ShouldShowSuggestions reports whether text is long enough to offer
// suggestions: more than minChars characters once surrounding space is trimmed.
func ShouldShowSuggestions(text string, minChars int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) > minChars
}

// VisibleSuggestions returns at most max leading entries of list, in order.
func VisibleSuggestions(list []string, max int) []string {
	if max >= 0 && len(list) > max {
		return list[:max]
	}
	return list
}

// PanelVisible reports whether the suggestion panel is drawn
func PanelVisible(show bool, list []string) bool {
	return show && len(list) > 0
}
