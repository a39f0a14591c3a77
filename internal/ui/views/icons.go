package views

// Icon names understood by Icon
const (
	IconSearch = "search"
	IconClear  = "x"
	IconResult = "result"
)

var icons = map[string]string{
	IconSearch: "⌕",
	IconClear:  "✕",
	IconResult: "•",
}

// Icon returns the glyph for a symbolic icon name, or "" if unknown.
// Icons are decorative only.
func Icon(name string) string {
	return icons[name]
}
