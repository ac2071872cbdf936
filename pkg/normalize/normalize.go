package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold devuelve una clave de búsqueda sin tildes y en minúsculas.
// "Tornillería Ø8" y "tornilleria ø8" deben encontrar el mismo artículo,
// porque los nombres llegan tecleados de cualquier manera desde el almacén.
func Fold(s string) string {
	// El transformer de norm no es seguro para uso concurrente: uno por llamada.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return strings.ToLower(strings.TrimSpace(out))
}
