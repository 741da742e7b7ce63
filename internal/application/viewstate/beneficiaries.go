package viewstate

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// BeneficiaryCache caché de beneficiarios indexada por NIF.
type BeneficiaryCache struct {
	*Collection[string, entity.Beneficiary]
}

// NewBeneficiaryCache crea la caché vacía.
func NewBeneficiaryCache() *BeneficiaryCache {
	return &BeneficiaryCache{
		Collection: NewCollection(func(b entity.Beneficiary) string { return b.NIF }),
	}
}

// Search búsqueda rápida local por nombre, NIF, zona o contacto.
// Ignora mayúsculas y acentos ("Conceição" coincide con "conceicao").
// Un término vacío devuelve la caché completa.
func (c *BeneficiaryCache) Search(term string) []entity.Beneficiary {
	q := fold(strings.TrimSpace(term))
	if q == "" {
		return c.Snapshot()
	}
	return c.Filter(func(b entity.Beneficiary) bool {
		for _, field := range []string{b.Nome, b.NIF, b.ZonaResidencia, b.Contacto} {
			if strings.Contains(fold(field), q) {
				return true
			}
		}
		return false
	})
}

// fold pasa a minúsculas y quita marcas diacríticas.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
