// Package search normaliza términos de búsqueda para comparaciones
// insensibles a acentos y mayúsculas.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold devuelve el término en minúsculas y sin marcas diacríticas
// ("Tornillería" -> "tornilleria"). El transformador se construye en
// cada llamada porque no es seguro compartirlo entre goroutines.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
