package export

import "strings"

// replacer maps typographic characters the backends like to emit onto
// their ASCII equivalents. The core PDF fonts only cover Latin-1.
var replacer = strings.NewReplacer(
	"•", "-", // bullet
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"…", "...", // ellipsis
)

// cleanText transliterates typographic characters to ASCII and replaces
// anything still outside Latin-1 with '?'. Lossy, never an error: the same
// input always yields the same output.
func cleanText(text string) string {
	if text == "" {
		return ""
	}
	text = replacer.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r <= 0xFF {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}
