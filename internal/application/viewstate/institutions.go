package viewstate

import (
	"fmt"
	"strings"

	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// StatusFilter filtro de estado para el panel de instituciones.
// Además de los tres estados admite FilterAll.
type StatusFilter string

// Filtros disponibles.
const (
	FilterPending  StatusFilter = entity.InstitutionPending
	FilterApproved StatusFilter = entity.InstitutionApproved
	FilterRejected StatusFilter = entity.InstitutionRejected
	FilterAll      StatusFilter = "all"
)

// Filters orden de las pestañas del panel.
var Filters = []StatusFilter{FilterPending, FilterApproved, FilterRejected, FilterAll}

// ParseStatusFilter interpreta el filtro recibido por query/body.
// Vacío, "all" y "todas" significan sin filtro; los estados no distinguen mayúsculas.
func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "", strings.EqualFold(s, "all"), strings.EqualFold(s, "todas"):
		return FilterAll, nil
	}
	for _, f := range Filters[:3] {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: filtro de estado %q", domain.ErrInvalidInput, s)
}

// InstitutionCache caché de instituciones indexada por id.
type InstitutionCache struct {
	col *Collection[int64, entity.Institution]
}

// NewInstitutionCache crea la caché vacía.
func NewInstitutionCache() *InstitutionCache {
	return &InstitutionCache{
		col: NewCollection(func(i entity.Institution) int64 { return i.ID }),
	}
}

// Load reemplaza la caché con la respuesta del servidor.
func (c *InstitutionCache) Load(list []entity.Institution) {
	c.col.Load(normalize(list))
}

// Generation contador de mutaciones; ver Collection.LoadIf.
func (c *InstitutionCache) Generation() uint64 {
	return c.col.Generation()
}

// LoadIf como Load salvo que se haya aplicado una mutación desde gen.
func (c *InstitutionCache) LoadIf(list []entity.Institution, gen uint64) bool {
	return c.col.LoadIf(normalize(list), gen)
}

func normalize(list []entity.Institution) []entity.Institution {
	norm := make([]entity.Institution, len(list))
	for i, inst := range list {
		inst.NormalizeStatus()
		norm[i] = inst
	}
	return norm
}

// Get devuelve una copia de la institución id.
func (c *InstitutionCache) Get(id int64) (entity.Institution, bool) {
	return c.col.Get(id)
}

// ApplyStatusChange fija el estado confirmado por el servidor y el booleano
// derivado Aprovada. Si id no está en caché no cambia nada y devuelve
// domain.ErrUnknownID.
func (c *InstitutionCache) ApplyStatusChange(id int64, status string) error {
	if !entity.ValidInstitutionStatus(status) {
		return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	ok := c.col.Update(id, func(i *entity.Institution) {
		i.Estado = status
		i.Aprovada = status == entity.InstitutionApproved
	})
	if !ok {
		return fmt.Errorf("%w: instituição %d", domain.ErrUnknownID, id)
	}
	return nil
}

// Remove elimina id de la caché; idempotente.
func (c *InstitutionCache) Remove(id int64) bool {
	return c.col.Remove(id)
}

// FilterByStatus proyección por estado exacto, o todo para FilterAll.
func (c *InstitutionCache) FilterByStatus(f StatusFilter) []entity.Institution {
	if f == FilterAll {
		return c.col.Snapshot()
	}
	return c.col.Filter(func(i entity.Institution) bool { return i.Estado == string(f) })
}

// CountByStatus número de instituciones en el estado dado.
func (c *InstitutionCache) CountByStatus(status string) int {
	return c.col.Count(func(i entity.Institution) bool { return i.Estado == status })
}

// Counts conteo por pestaña, usado para etiquetar los controles de la vista.
func (c *InstitutionCache) Counts() map[StatusFilter]int {
	out := make(map[StatusFilter]int, len(Filters))
	snap := c.col.Snapshot()
	for _, inst := range snap {
		out[StatusFilter(inst.Estado)]++
	}
	out[FilterAll] = len(snap)
	for _, f := range Filters {
		if _, ok := out[f]; !ok {
			out[f] = 0
		}
	}
	return out
}

// Snapshot copia ordenada de la caché.
func (c *InstitutionCache) Snapshot() []entity.Institution {
	return c.col.Snapshot()
}

// IDs ids en orden de la caché.
func (c *InstitutionCache) IDs() []int64 {
	return c.col.Keys()
}

// Len número de instituciones en caché.
func (c *InstitutionCache) Len() int {
	return c.col.Len()
}
