package utils

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// PrintableText makes backend-supplied text safe to write to a terminal.
// Escape sequences are removed, whitespace control characters become a
// single space and any other C0/C1 control rune is dropped.
func PrintableText(s string) string {
	s = whitespaceControls.Replace(s)
	s = ansi.Strip(s)

	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

var whitespaceControls = strings.NewReplacer("\t", " ", "\n", " ", "\v", " ", "\f", " ", "\r", " ")
