package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeNeedle prepara un término de búsqueda: recorta espacios, pasa a
// minúsculas y elimina diacríticos ("Café" y "cafe" deben coincidir).
func NormalizeNeedle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}
	return out
}
